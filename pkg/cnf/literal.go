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

// Package cnf holds the value types shared by the DIMACS front-end and the
// solver: variables, literals and clauses, plus the parser/writer pair that
// turns a DIMACS file into a Formula and back.
package cnf

import "fmt"

// Var is a propositional variable, numbered from 0.
type Var int32

// Lit is a literal, bit-packed as 2*Var + sign following the usual CDCL
// convention: Lit(2*v) is the positive occurrence, Lit(2*v)+1 the negated one.
type Lit int32

// NewLit builds the literal for v with the given sign. negated=true yields
// the negative occurrence of v.
func NewLit(v Var, negated bool) Lit {
	l := Lit(v) << 1
	if negated {
		l |= 1
	}
	return l
}

// Var returns the underlying variable of l.
func (l Lit) Var() Var { return Var(l >> 1) }

// Negated reports whether l is the negative occurrence of its variable.
func (l Lit) Negated() bool { return l&1 != 0 }

// Negate returns the complementary literal.
func (l Lit) Negate() Lit { return l ^ 1 }

// FromInt builds a literal from a DIMACS-style signed integer (no zero).
func FromInt(x int32) Lit {
	if x > 0 {
		return NewLit(Var(x-1), false)
	}
	return NewLit(Var(-x-1), true)
}

// Int renders l back into DIMACS signed-integer form.
func (l Lit) Int() int32 {
	n := int32(l.Var()) + 1
	if l.Negated() {
		return -n
	}
	return n
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", l.Int())
}
