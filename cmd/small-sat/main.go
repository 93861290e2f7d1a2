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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JulianKnodt/small-sat/internal/satlog"
	"github.com/JulianKnodt/small-sat/pkg/cnf"
	"github.com/JulianKnodt/small-sat/pkg/portfolio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		workers int
		stats   bool
	)

	if v := os.Getenv("SMALL_SAT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			workers = n
		}
	}

	root := &cobra.Command{
		Use:           "small-sat [files...]",
		Short:         "Parallel portfolio CDCL SAT solver over DIMACS CNF files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
	}
	root.Flags().IntVar(&workers, "workers", workers, "number of portfolio workers (default min(NumCPU, 4))")
	root.Flags().BoolVar(&stats, "stats", false, "emit per-worker diagnostics to stderr")

	exitCode := 0
	root.RunE = func(cmd *cobra.Command, files []string) error {
		logger := satlog.New(stats)
		for _, path := range files {
			code, err := solveFile(logger, path, workers, stats)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			if code != 0 {
				exitCode = code
			}
		}
		return nil
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

func solveFile(logger *logrus.Logger, path string, workers int, stats bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 1, &cnf.IOError{Path: path, Err: err}
	}
	defer f.Close()

	formula, err := cnf.Parse(f)
	if err != nil {
		var pe *cnf.ParseError
		var ie *cnf.IOError
		if errors.As(err, &pe) || errors.As(err, &ie) {
			return 1, fmt.Errorf("%s: %w", path, err)
		}
		return 1, err
	}

	out := portfolio.Solve(context.Background(), formula, portfolio.Config{Workers: workers})

	if stats {
		reportStats(logger, path, out)
	}

	switch {
	case out.Result.Sat:
		fmt.Println(formatSat(out.Result.Assignment))
		return 0, nil
	case out.Result.Unsat:
		fmt.Println("UNSAT")
		return 0, nil
	default:
		return 1, fmt.Errorf("%s: solve did not reach a decision", path)
	}
}

func formatSat(assignment []bool) string {
	s := "SAT "
	for v, val := range assignment {
		if val {
			s += fmt.Sprintf("%d ", v+1)
		} else {
			s += fmt.Sprintf("%d ", -(v + 1))
		}
	}
	return s + "0"
}

func reportStats(logger *logrus.Logger, path string, out portfolio.Outcome) {
	for id, st := range out.Stats {
		satlog.Worker(logger, id).WithFields(logrus.Fields{
			"file":       path,
			"decisions":  st.Decisions,
			"conflicts":  st.Conflicts,
			"restarts":   st.Restarts,
			"reductions": st.Reductions,
			"imported":   st.Imported,
			"exported":   st.Exported,
		}).Info("worker finished")
	}
	logger.WithField("file", path).WithField("winner", out.WorkerID).Info("solve complete")
}
