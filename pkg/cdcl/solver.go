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

// Package cdcl implements a single-worker conflict-driven clause-learning
// SAT engine: two-watched-literal propagation, 1-UIP conflict analysis with
// deep minimization, VSIDS decisions with phase saving, Luby restarts and
// activity-based learnt clause reduction. It has no file I/O of its own —
// pkg/cnf supplies the Formula it is built from — and no notion of workers
// or shared clauses; pkg/portfolio drives many Solvers through the
// Exchanger hook below to get parallel portfolio search.
package cdcl

import (
	"container/heap"
	"context"

	"github.com/JulianKnodt/small-sat/pkg/cnf"
)

// Solver holds all per-worker state for one CDCL search.
type Solver struct {
	numVars int

	assign []Lbool
	level  []int32
	reason []Reason

	trail    []cnf.Lit
	trailLim []int
	curLevel int
	qHead    int

	polarity []bool

	watches watchList
	clauses []*Clause
	learnts []*Clause

	vsids       *varHeap
	varInc      float64
	varDecayInv float64

	clauseInc      float64
	clauseDecayInv float64

	restarts *restartPolicy
	reduce   *reducePolicy

	pendingExport [][]cnf.Lit

	unsat bool

	Stats Stats
}

// New builds a Solver for f. Clauses are watched as they are loaded; if
// that derives a conflict at level 0 (an explicit empty clause, or two
// conflicting unit clauses), the solver is marked unsatisfiable immediately
// and Run returns UNSAT without entering the search loop.
func New(f *cnf.Formula) *Solver {
	s := &Solver{
		numVars:        f.NumVars,
		assign:         make([]Lbool, f.NumVars),
		level:          make([]int32, f.NumVars),
		reason:         make([]Reason, f.NumVars),
		polarity:       make([]bool, f.NumVars),
		watches:        newWatchList(f.NumVars),
		vsids:          newVarHeap(f.NumVars),
		varInc:         1,
		varDecayInv:    1 / 0.95,
		clauseInc:      1,
		clauseDecayInv: 1 / 0.999,
		restarts:       newRestartPolicy(32),
		reduce:         newReducePolicy(2000, 300),
	}
	for v := range s.level {
		s.level[v] = -1
	}

	for _, cl := range f.Clauses {
		if s.unsat {
			break
		}
		s.loadClause(append([]cnf.Lit(nil), cl.Lits...))
	}
	return s
}

func (s *Solver) litValue(l cnf.Lit) Lbool {
	v := s.assign[l.Var()]
	if v == LUndef {
		return LUndef
	}
	if l.Negated() {
		return v.Negate()
	}
	return v
}

func boolFromLit(l cnf.Lit) Lbool {
	if l.Negated() {
		return LFalse
	}
	return LTrue
}

func (s *Solver) enqueue(l cnf.Lit, r Reason) {
	v := l.Var()
	s.assign[v] = boolFromLit(l)
	s.level[v] = int32(s.curLevel)
	s.reason[v] = r
	s.polarity[v] = !l.Negated()
	s.trail = append(s.trail, l)
}

func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
	s.curLevel++
}

func (s *Solver) backtrackTo(lvl int) {
	if lvl >= s.curLevel {
		return
	}
	start := s.trailLim[lvl]
	for i := len(s.trail) - 1; i >= start; i-- {
		v := s.trail[i].Var()
		s.assign[v] = LUndef
		s.level[v] = -1
		s.reason[v] = Reason{}
		s.vsids.push(v)
	}
	s.trail = s.trail[:start]
	s.trailLim = s.trailLim[:lvl]
	s.curLevel = lvl
	s.qHead = len(s.trail)
}

func (s *Solver) allAssigned() bool { return len(s.trail) == s.numVars }

func (s *Solver) maxLevel(cl *Clause) int {
	max := 0
	for _, l := range cl.Lits {
		if int(s.level[l.Var()]) > max {
			max = int(s.level[l.Var()])
		}
	}
	return max
}

func (s *Solver) assignment() []bool {
	out := make([]bool, s.numVars)
	for v := 0; v < s.numVars; v++ {
		out[v] = s.assign[v] == LTrue
	}
	return out
}

// loadClause installs an initial (non-learnt) clause, deriving an immediate
// unit assignment or a level-0 conflict as needed.
func (s *Solver) loadClause(lits []cnf.Lit) {
	if len(lits) == 0 {
		s.unsat = true
		return
	}
	if len(lits) == 1 {
		switch s.litValue(lits[0]) {
		case LFalse:
			s.unsat = true
		case LUndef:
			s.enqueue(lits[0], Reason{Kind: ReasonDecision})
			if conflict := s.propagate(); conflict != nil {
				s.unsat = true
			}
		}
		return
	}
	cl := newClause(lits, false)
	s.clauses = append(s.clauses, cl)
	unitLit, isUnit, conflict := s.watchNewClause(cl)
	if conflict {
		s.unsat = true
		return
	}
	if isUnit {
		s.enqueue(unitLit, Reason{Kind: ReasonPropagated, Clause: cl})
		if c := s.propagate(); c != nil {
			s.unsat = true
		}
	}
}

// watchNewClause installs the two watched literals for cl (len(cl.Lits)
// must be >= 2), choosing them from the current assignment so the clause's
// two-watch invariant holds immediately. Mirrors the reference solver's
// add_transfer: prefer two non-false literals; fall back to the single
// non-false literal plus the highest-level false literal, so backtracking
// past that level naturally re-exposes the clause; and if none are
// non-false the clause is already falsified.
func (s *Solver) watchNewClause(cl *Clause) (unitLit cnf.Lit, isUnit, conflict bool) {
	lits := cl.Lits
	var nonFalse, falseIdx []int
	for i, l := range lits {
		if s.litValue(l) == LFalse {
			falseIdx = append(falseIdx, i)
		} else {
			nonFalse = append(nonFalse, i)
		}
	}

	highestLevel := func(idxs []int) int {
		best := idxs[0]
		for _, i := range idxs[1:] {
			if s.level[lits[i].Var()] > s.level[lits[best].Var()] {
				best = i
			}
		}
		return best
	}

	switch len(nonFalse) {
	case 0:
		a := highestLevel(falseIdx)
		b := a
		if len(falseIdx) > 1 {
			rest := make([]int, 0, len(falseIdx)-1)
			for _, i := range falseIdx {
				if i != a {
					rest = append(rest, i)
				}
			}
			b = highestLevel(rest)
		}
		s.installWatch(cl, lits[a], lits[b])
		return 0, false, true
	case 1:
		w1 := nonFalse[0]
		w2 := w1
		if len(falseIdx) > 0 {
			w2 = highestLevel(falseIdx)
		}
		s.installWatch(cl, lits[w1], lits[w2])
		if s.litValue(lits[w1]) == LUndef {
			return lits[w1], true, false
		}
		return 0, false, false
	default:
		s.installWatch(cl, lits[nonFalse[0]], lits[nonFalse[1]])
		return 0, false, false
	}
}

func (s *Solver) installWatch(cl *Clause, a, b cnf.Lit) {
	s.watches.add(a, Watch{Clause: cl, Blocker: b})
	s.watches.add(b, Watch{Clause: cl, Blocker: a})
}

// Result is what Run settles on.
type Result struct {
	Sat        bool
	Unsat      bool
	Cancelled  bool
	Assignment []bool
}

// Exchanger is the seam between a single Solver and whatever shares learnt
// clauses across workers. Exchange is called at every propagation
// quiescence point: it hands over the clauses learnt since the prior call
// (as raw literal slices — Activity/LBD bookkeeping never crosses a worker
// boundary) and gets back clauses other workers have published since then,
// to import into this worker's own clause database.
type Exchanger interface {
	Exchange(learnt [][]cnf.Lit) [][]cnf.Lit
}

type solverState int

const (
	stateDecide solverState = iota
	statePropagate
	stateAnalyze
	stateRestart
	stateReduce
)

// Run drives the CDCL state machine to a result, checking ctx at the two
// cooperative-cancellation points: the top of Decide, and right after an
// Exchange call.
func (s *Solver) Run(ctx context.Context, ex Exchanger) Result {
	if s.unsat {
		return Result{Unsat: true}
	}
	if conflict := s.propagate(); conflict != nil {
		return Result{Unsat: true}
	}

	st := stateDecide
	var conflict *Clause

	for {
		switch st {
		case stateDecide:
			if debugChecks {
				s.checkTrailInvariant()
			}
			if ctx.Err() != nil {
				return Result{Cancelled: true}
			}
			if s.allAssigned() {
				return Result{Sat: true, Assignment: s.assignment()}
			}
			if s.reduce.due(int(s.Stats.Conflicts)) {
				st = stateReduce
				continue
			}
			if s.restarts.due() {
				st = stateRestart
				continue
			}
			lit := s.pickBranchLiteral()
			s.Stats.Decisions++
			s.newDecisionLevel()
			s.enqueue(lit, Reason{Kind: ReasonDecision})
			st = statePropagate

		case statePropagate:
			conflict = s.propagate()
			if conflict != nil {
				st = stateAnalyze
				continue
			}
			exported := s.drainExports()
			imported := ex.Exchange(exported)
			if ctx.Err() != nil {
				return Result{Cancelled: true}
			}
			if len(imported) > 0 {
				s.Stats.Imported += uint64(len(imported))
				conflict = s.importClauses(imported)
				if conflict == nil {
					conflict = s.propagate()
				}
				if conflict != nil {
					st = stateAnalyze
					continue
				}
			}
			st = stateDecide

		case stateAnalyze:
			s.Stats.Conflicts++
			s.restarts.onConflict()
			// A conflict whose literals are all decided at level 0 is
			// unsatisfiable outright, regardless of the current decision
			// level: it can arise not just at level 0 itself but also
			// from an imported clause that happens to be falsified
			// purely by permanent level-0 facts.
			conflictLevel := s.maxLevel(conflict)
			if conflictLevel == 0 {
				return Result{Unsat: true}
			}
			// analyze's backward walk assumes the conflict has a literal
			// at s.curLevel, which only holds for conflicts propagate
			// derives itself. An imported clause can be falsified by an
			// assignment this worker reached levels ago, since whatever
			// level the exporting worker learnt it at has nothing to do
			// with this worker's current one; jump back to the conflict's
			// own level first so the invariant holds before analyze runs.
			if conflictLevel < s.curLevel {
				s.backtrackTo(conflictLevel)
			}
			learnt, btLevel := s.analyze(conflict)
			s.backtrackTo(btLevel)
			s.decayActivities()

			if len(learnt.Lits) == 1 {
				s.enqueue(learnt.Lits[0], Reason{Kind: ReasonPropagated, Clause: learnt})
			} else {
				s.learnts = append(s.learnts, learnt)
				unitLit, isUnit, _ := s.watchNewClause(learnt)
				if isUnit {
					s.enqueue(unitLit, Reason{Kind: ReasonPropagated, Clause: learnt})
				}
			}
			s.queueExport(learnt)
			conflict = nil
			st = statePropagate

		case stateRestart:
			s.backtrackTo(0)
			s.restarts.restart()
			s.Stats.Restarts++
			st = stateDecide

		case stateReduce:
			s.reduceLearnts()
			s.reduce.advance(int(s.Stats.Conflicts))
			s.Stats.Reductions++
			st = stateDecide
		}
	}
}

func (s *Solver) pickBranchLiteral() cnf.Lit {
	for s.vsids.Len() > 0 {
		v := heap.Pop(s.vsids).(cnf.Var)
		if s.assign[v] == LUndef {
			return cnf.NewLit(v, !s.polarity[v])
		}
	}
	panic("cdcl: pickBranchLiteral called with no unassigned variables")
}
