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

// ReasonKind tags why a literal ended up on the trail.
type ReasonKind uint8

const (
	ReasonDecision ReasonKind = iota
	ReasonPropagated
	ReasonImported
)

// Reason is the antecedent of an assigned variable: a decision has no
// clause, a propagated or imported literal does. A tagged struct rather
// than an interface, so recording a reason never allocates on the
// propagation hot path.
type Reason struct {
	Kind   ReasonKind
	Clause *Clause
}
