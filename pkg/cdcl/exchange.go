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

import "github.com/JulianKnodt/small-sat/pkg/cnf"

func (s *Solver) queueExport(cl *Clause) {
	s.pendingExport = append(s.pendingExport, append([]cnf.Lit(nil), cl.Lits...))
}

func (s *Solver) drainExports() [][]cnf.Lit {
	if len(s.pendingExport) == 0 {
		return nil
	}
	out := s.pendingExport
	s.pendingExport = nil
	s.Stats.Exported += uint64(len(out))
	return out
}

// importClauses installs the clauses in batches in order. Each one is
// watched under the current assignment; one that is unit enqueues its
// implied literal, and the first one that is already falsified is returned
// as a conflict. Clauses after that one in the batch are not installed.
func (s *Solver) importClauses(batches [][]cnf.Lit) *Clause {
	for _, lits := range batches {
		cl := newClause(append([]cnf.Lit(nil), lits...), true)

		if len(cl.Lits) == 1 {
			switch s.litValue(cl.Lits[0]) {
			case LFalse:
				return cl
			case LUndef:
				s.enqueue(cl.Lits[0], Reason{Kind: ReasonImported, Clause: cl})
			}
			continue
		}

		s.learnts = append(s.learnts, cl)
		unitLit, isUnit, conflict := s.watchNewClause(cl)
		if conflict {
			return cl
		}
		if isUnit {
			s.enqueue(unitLit, Reason{Kind: ReasonImported, Clause: cl})
		}
	}
	return nil
}
