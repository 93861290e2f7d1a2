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
	"container/heap"

	"github.com/JulianKnodt/small-sat/pkg/cnf"
)

// varHeap is a container/heap max-heap over variables keyed by activity,
// adapted from the same container/heap-backed literal heap cespare's
// saturday solver uses for its decision queue. pos tracks each variable's
// slot so activity bumps can heap.Fix it in place, and so a variable can be
// removed (on assignment) and later reinserted (on backtrack) in O(log n).
type varHeap struct {
	vars     []cnf.Var
	pos      []int
	activity []float64
}

func newVarHeap(numVars int) *varHeap {
	h := &varHeap{
		pos:      make([]int, numVars),
		activity: make([]float64, numVars),
	}
	h.vars = make([]cnf.Var, numVars)
	for v := 0; v < numVars; v++ {
		h.vars[v] = cnf.Var(v)
		h.pos[v] = v
	}
	heap.Init(h)
	return h
}

func (h *varHeap) Len() int { return len(h.vars) }

func (h *varHeap) Less(i, j int) bool {
	return h.activity[h.vars[i]] > h.activity[h.vars[j]]
}

func (h *varHeap) Swap(i, j int) {
	h.vars[i], h.vars[j] = h.vars[j], h.vars[i]
	h.pos[h.vars[i]] = i
	h.pos[h.vars[j]] = j
}

func (h *varHeap) Push(x any) {
	v := x.(cnf.Var)
	h.pos[v] = len(h.vars)
	h.vars = append(h.vars, v)
}

func (h *varHeap) Pop() any {
	n := len(h.vars)
	v := h.vars[n-1]
	h.vars = h.vars[:n-1]
	h.pos[v] = -1
	return v
}

func (h *varHeap) inHeap(v cnf.Var) bool { return h.pos[v] >= 0 }

func (h *varHeap) fix(v cnf.Var) {
	if h.inHeap(v) {
		heap.Fix(h, h.pos[v])
	}
}

func (h *varHeap) push(v cnf.Var) {
	if !h.inHeap(v) {
		heap.Push(h, v)
	}
}
