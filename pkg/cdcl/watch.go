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

// Watch records that Clause is watching some literal l, with Blocker another
// literal drawn from the clause at attach time. Blocker is a pure fast-path
// cache: if it is ever true the clause is satisfied regardless of which
// literals are currently watched, so it never needs to be kept in sync with
// watch moves.
type Watch struct {
	Clause  *Clause
	Blocker cnf.Lit
}

// watchList[l] holds every Watch whose clause is watching literal l. It is
// consulted when l is falsified, i.e. indexed by the negation of whatever
// literal just became true.
type watchList [][]Watch

func newWatchList(numVars int) watchList {
	return make(watchList, 2*numVars)
}

func (wl watchList) add(l cnf.Lit, w Watch) {
	wl[l] = append(wl[l], w)
}
