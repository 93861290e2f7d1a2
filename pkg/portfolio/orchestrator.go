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

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/JulianKnodt/small-sat/pkg/cdcl"
	"github.com/JulianKnodt/small-sat/pkg/cnf"
)

// Config controls a portfolio Solve call.
type Config struct {
	// Workers is the number of replica solvers to race. A value <= 0
	// resolves to min(runtime.NumCPU(), 4).
	Workers int
}

func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	n := runtime.NumCPU()
	if n > 4 {
		n = 4
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Outcome is what Solve settles on, plus the per-worker statistics the CLI's
// --stats side channel reports.
type Outcome struct {
	Result   cdcl.Result
	WorkerID int
	Stats    []cdcl.Stats
}

// Solve replicates f across cfg.Workers identical CDCL solvers. As soon as
// any one of them decides the formula it cancels the rest, and Solve returns
// that result once every worker has stopped. The
// context passed to each worker is purely for cancellation propagation —
// there is no deadline — and is derived here so that claiming the result
// cell cancels every other worker's next checkpoint.
func Solve(ctx context.Context, f *cnf.Formula, cfg Config) Outcome {
	n := cfg.workerCount()
	db := NewClauseDB(n)
	cell := &ResultCell{}
	stats := make([]cdcl.Stats, n)

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	for i := 0; i < n; i++ {
		id := i
		g.Go(func() error {
			s := cdcl.New(f)
			w := &worker{id: id, db: db}
			res := s.Run(cctx, w)
			stats[id] = s.Stats
			if !res.Cancelled && cell.TrySet(id, res) {
				cancel()
			}
			return nil
		})
	}
	_ = g.Wait()

	res, workerID, _ := cell.Get()
	return Outcome{Result: res, WorkerID: workerID, Stats: stats}
}
