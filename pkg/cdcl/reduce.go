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

import "sort"

// locked reports whether cl is currently serving as some variable's
// antecedent on the trail, in which case dropping it would leave that
// assignment's justification dangling.
func (s *Solver) locked(cl *Clause) bool {
	for _, l := range cl.Lits {
		v := l.Var()
		if s.assign[v] != LUndef && s.reason[v].Clause == cl {
			return true
		}
	}
	return false
}

func (s *Solver) unwatch(cl *Clause) {
	for _, l := range cl.Lits {
		kept := s.watches[l][:0]
		for _, w := range s.watches[l] {
			if w.Clause != cl {
				kept = append(kept, w)
			}
		}
		s.watches[l] = kept
	}
}

// reduceLearnts sorts the learnt database by activity and drops the lower
// half, skipping clauses that are locked, binary, or have a low glue level
// (LBD <= 2) — those are kept regardless of age since they are cheap to
// keep around and usually still useful.
func (s *Solver) reduceLearnts() {
	sort.Slice(s.learnts, func(i, j int) bool {
		return s.learnts[i].Activity < s.learnts[j].Activity
	})

	half := len(s.learnts) / 2
	kept := s.learnts[:0]
	for i, cl := range s.learnts {
		if i < half && !s.locked(cl) && len(cl.Lits) > 2 && cl.LBD > 2 {
			s.unwatch(cl)
			continue
		}
		kept = append(kept, cl)
	}
	s.learnts = kept
}
