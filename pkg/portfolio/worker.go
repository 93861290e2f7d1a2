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

package portfolio

import "github.com/JulianKnodt/small-sat/pkg/cnf"

// worker implements cdcl.Exchanger against a shared ClauseDB, making it the
// only point a Solver ever touches anything outside of its own memory. The
// three calls here, an append, a read and a trim of the log, are the
// entirety of the clause-exchange suspension point in the concurrency model.
type worker struct {
	id int
	db *ClauseDB
}

func (w *worker) Exchange(learnt [][]cnf.Lit) [][]cnf.Lit {
	w.db.Export(w.id, learnt)
	imported := w.db.Import(w.id)
	w.db.Reclaim()
	return imported
}
