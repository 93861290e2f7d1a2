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

//go:build satdebug

package cdcl

import "github.com/kr/pretty"

// debugChecks gates the invariant checks below. They are inert in normal
// builds and only compiled in under the satdebug tag, mirroring the
// reference repo's own //nolint:unused debug-only dump helpers: code that
// ships but stays off by default.
const debugChecks = true

// checkTrailInvariant panics with an InternalInvariantError if any trail
// entry's recorded level doesn't match the decision level it was pushed
// under. It exists to catch backtracking bugs during development, never
// during a normal solve.
func (s *Solver) checkTrailInvariant() {
	bounds := append([]int{0}, s.trailLim...)
	bounds = append(bounds, len(s.trail))
	for lvl := 0; lvl < len(bounds)-1; lvl++ {
		for i := bounds[lvl]; i < bounds[lvl+1]; i++ {
			if int(s.level[s.trail[i].Var()]) != lvl {
				s.dumpTrail()
				panic(&InternalInvariantError{Msg: "trail entry level mismatch"})
			}
		}
	}
}

// dumpTrail prints the trail and decision-level boundaries for a developer
// staring at a failed invariant check, not for any output a normal run ever
// produces.
func (s *Solver) dumpTrail() {
	pretty.Println(s.trail, s.trailLim)
}
