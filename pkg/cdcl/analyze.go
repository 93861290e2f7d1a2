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

import (
	"sort"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/JulianKnodt/small-sat/pkg/cnf"
)

// analyze resolves backward over the trail from a conflict to its 1-UIP
// clause, generalizing the reference implementation's resolve-the-partial-
// clause loop from an unordered set of literals to the literal/trail/level
// model: seen marks which variables are already part of the resolvent,
// pending counts how many of those sit at the conflict's own decision
// level, and the walk stops the instant exactly one does — the first UIP.
// The result is deep-minimized, then sorted into the canonical clause form
// every Clause in the repo uses.
func (s *Solver) analyze(conflict *Clause) (*Clause, int) {
	seen := make([]bool, s.numVars)
	var learnt []cnf.Lit
	pending := 0

	idx := len(s.trail) - 1
	reasonClause := conflict
	var p cnf.Lit = -1 // sentinel: no literal resolved away yet

	for {
		if reasonClause.Learnt {
			s.bumpClauseActivity(reasonClause)
		}
		for _, lit := range reasonClause.Lits {
			if lit == p {
				continue
			}
			v := lit.Var()
			if seen[v] {
				continue
			}
			seen[v] = true
			s.bumpVarActivity(v)
			if int(s.level[v]) == s.curLevel {
				pending++
			} else if s.level[v] > 0 {
				learnt = append(learnt, lit)
			}
		}

		for !seen[s.trail[idx].Var()] {
			idx--
		}
		p = s.trail[idx]
		v := p.Var()
		seen[v] = false
		pending--
		if pending == 0 {
			break
		}
		idx--
		reasonClause = s.reason[v].Clause
	}

	assertLit := p.Negate()
	learnt = append(learnt, assertLit)
	// Move the asserting literal to the front so minimize can skip it
	// without a linear search; final storage order is by integer value,
	// restored by the sort below.
	learnt[len(learnt)-1], learnt[0] = learnt[0], learnt[len(learnt)-1]

	inLearnt := set.New[cnf.Var]()
	for _, l := range learnt {
		inLearnt.Add(l.Var())
	}
	learnt = s.minimize(learnt, inLearnt)

	sort.Slice(learnt, func(i, j int) bool { return learnt[i] < learnt[j] })

	cl := newClause(learnt, true)
	cl.LBD = s.computeLBD(learnt)

	btLevel := 0
	for _, l := range learnt {
		if l == assertLit {
			continue
		}
		if int(s.level[l.Var()]) > btLevel {
			btLevel = int(s.level[l.Var()])
		}
	}
	return cl, btLevel
}

// minimize drops literals whose antecedent chain is already implied by the
// rest of the learnt clause (or by level-0 units), via a depth-first search
// with a per-variable memo. Breadth-first would stop at one hop and miss
// transitively-redundant literals; depth-first, walking all the way to
// level-0 roots or a genuinely new literal, is what makes the reduction
// sound.
func (s *Solver) minimize(learnt []cnf.Lit, inLearnt set.Set[cnf.Var]) []cnf.Lit {
	memo := make(map[cnf.Var]int8)
	out := learnt[:1]
	for _, l := range learnt[1:] {
		if s.reason[l.Var()].Clause != nil && s.litRedundant(l, inLearnt, memo) {
			continue
		}
		out = append(out, l)
	}
	return out
}

const (
	memoRemovable int8 = 1
	memoRequired  int8 = 2
)

func (s *Solver) litRedundant(lit cnf.Lit, inLearnt set.Set[cnf.Var], memo map[cnf.Var]int8) bool {
	v := lit.Var()
	if m, ok := memo[v]; ok {
		return m == memoRemovable
	}
	if s.level[v] == 0 {
		memo[v] = memoRemovable
		return true
	}
	reason := s.reason[v].Clause
	if reason == nil {
		memo[v] = memoRequired
		return false
	}
	for _, l2 := range reason.Lits {
		v2 := l2.Var()
		if v2 == v || inLearnt.Contains(v2) || s.level[v2] == 0 {
			continue
		}
		if !s.litRedundant(l2, inLearnt, memo) {
			memo[v] = memoRequired
			return false
		}
	}
	memo[v] = memoRemovable
	return true
}

func (s *Solver) computeLBD(lits []cnf.Lit) int {
	seen := make(map[int32]bool, len(lits))
	for _, l := range lits {
		seen[s.level[l.Var()]] = true
	}
	return len(seen)
}

func (s *Solver) bumpVarActivity(v cnf.Var) {
	s.vsids.activity[v] += s.varInc
	if s.vsids.activity[v] > 1e100 {
		for i := range s.vsids.activity {
			s.vsids.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	s.vsids.fix(v)
}

// bumpClauseActivity rewards a learnt clause each time it serves as an
// antecedent during conflict resolution, the same recency signal reduce.go
// later sorts on to decide what's worth keeping.
func (s *Solver) bumpClauseActivity(cl *Clause) {
	cl.Activity += s.clauseInc
	if cl.Activity > 1e100 {
		for _, other := range s.learnts {
			other.Activity *= 1e-100
		}
		s.clauseInc *= 1e-100
	}
}

func (s *Solver) decayActivities() {
	s.varInc *= s.varDecayInv
	s.clauseInc *= s.clauseDecayInv
}
