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

// Clause is a clause as held by a single worker: the literal sequence plus
// the bookkeeping the solver needs for VSIDS-style clause scoring and
// reduction. Every learnt clause the core engine derives satisfies this;
// imported clauses get wrapped into one too, since Activity/LBD are
// worker-local and never shared.
type Clause struct {
	Lits     []cnf.Lit
	Learnt   bool
	Activity float64
	LBD      int
}

func newClause(lits []cnf.Lit, learnt bool) *Clause {
	return &Clause{Lits: lits, Learnt: learnt}
}
