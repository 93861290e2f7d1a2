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

package portfolio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JulianKnodt/small-sat/pkg/cnf"
	"github.com/JulianKnodt/small-sat/pkg/portfolio"
)

func formula(numVars int, clauses ...[]int32) *cnf.Formula {
	f := &cnf.Formula{NumVars: numVars}
	for _, raw := range clauses {
		lits := make([]cnf.Lit, len(raw))
		for i, x := range raw {
			lits[i] = cnf.FromInt(x)
		}
		cl, tautology := cnf.NewClause(lits)
		if !tautology {
			f.Clauses = append(f.Clauses, cl)
		}
	}
	return f
}

func pigeonhole(pigeons, holes int) *cnf.Formula {
	v := func(i, j int) int32 { return int32(i*holes+j) + 1 }
	var clauses [][]int32
	for i := 0; i < pigeons; i++ {
		var row []int32
		for j := 0; j < holes; j++ {
			row = append(row, v(i, j))
		}
		clauses = append(clauses, row)
	}
	for j := 0; j < holes; j++ {
		for i1 := 0; i1 < pigeons; i1++ {
			for i2 := i1 + 1; i2 < pigeons; i2++ {
				clauses = append(clauses, []int32{-v(i1, j), -v(i2, j)})
			}
		}
	}
	return formula(pigeons*holes, clauses...)
}

func TestSolveUnsatAcrossWorkerCounts(t *testing.T) {
	f := pigeonhole(4, 3)
	for _, n := range []int{1, 2, 4} {
		out := portfolio.Solve(context.Background(), f, portfolio.Config{Workers: n})
		require.True(t, out.Result.Unsat, "workers=%d", n)
	}
}

func TestSolveSatAcrossWorkerCounts(t *testing.T) {
	f := formula(3,
		[]int32{1, 2, 3},
		[]int32{-1, 2},
		[]int32{-2, 3},
	)
	for _, n := range []int{1, 2, 4} {
		out := portfolio.Solve(context.Background(), f, portfolio.Config{Workers: n})
		require.True(t, out.Result.Sat, "workers=%d", n)
	}
}

func TestClauseDBImportIdempotent(t *testing.T) {
	db := portfolio.NewClauseDB(2)
	db.Export(0, [][]cnf.Lit{{cnf.FromInt(1), cnf.FromInt(-2)}})

	first := db.Import(1)
	require.Len(t, first, 1)

	second := db.Import(1)
	require.Empty(t, second, "re-import without new exports must be empty")
}

func TestClauseDBNeverReturnsOwnClauses(t *testing.T) {
	db := portfolio.NewClauseDB(2)
	db.Export(0, [][]cnf.Lit{{cnf.FromInt(1)}})
	require.Empty(t, db.Import(0))
}
