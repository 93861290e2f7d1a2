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

package cnf

import "sort"

// Clause is an ordered, deduplicated sequence of literals, as loaded from
// input. NewClause is the single place that enforces that invariant: every
// clause a formula holds has been through it.
type Clause struct {
	Lits []Lit
}

// NewClause sorts and dedups lits and reports whether the resulting clause
// is a tautology (contains both a literal and its negation), in which case
// it is always satisfied and the caller should drop it rather than keep the
// returned value.
func NewClause(lits []Lit) (Clause, bool) {
	cp := append([]Lit(nil), lits...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	out := cp[:0]
	for i, l := range cp {
		if i > 0 && l == out[len(out)-1] {
			continue // duplicate literal
		}
		out = append(out, l)
	}

	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1].Negate() {
			return Clause{}, true
		}
	}
	return Clause{Lits: out}, false
}

// Formula is a variable count plus the clause set read from a DIMACS file,
// after tautology/duplicate simplification.
type Formula struct {
	NumVars int
	Clauses []Clause
}
