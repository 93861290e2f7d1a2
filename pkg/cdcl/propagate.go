/*
Copyright 2024 Simon Murray

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cdcl

// propagate drains the trail from qHead to a fixpoint, returning the first
// conflicting clause it finds, or nil once nothing more follows from unit
// propagation. For each newly-true literal it walks the watch list of its
// negation, trying the blocker fast path first, then scanning for a
// replacement watch, and falling back to enqueuing or reporting a conflict
// on the watch's blocker literal, the only one the scan left unchecked.
func (s *Solver) propagate() *Clause {
	for s.qHead < len(s.trail) {
		lit := s.trail[s.qHead]
		s.qHead++
		negLit := lit.Negate()

		ws := s.watches[negLit]
		keep := ws[:0]

		for i := 0; i < len(ws); i++ {
			w := ws[i]
			if s.litValue(w.Blocker) == LTrue {
				keep = append(keep, w)
				continue
			}

			cl := w.Clause
			replaced := false
			for _, other := range cl.Lits {
				if other == negLit || other == w.Blocker {
					continue
				}
				if s.litValue(other) != LFalse {
					s.watches.add(other, Watch{Clause: cl, Blocker: w.Blocker})
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			s.Stats.Propagations++
			switch s.litValue(w.Blocker) {
			case LFalse:
				keep = append(keep, ws[i:]...)
				s.watches[negLit] = keep
				return cl
			case LUndef:
				s.enqueue(w.Blocker, Reason{Kind: ReasonPropagated, Clause: cl})
				keep = append(keep, w)
			default:
				keep = append(keep, w)
			}
		}
		s.watches[negLit] = keep
	}
	return nil
}
