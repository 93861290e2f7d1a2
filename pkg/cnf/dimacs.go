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

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a DIMACS CNF stream: "c" comment lines, one "p cnf <vars>
// <clauses>" header, then a whitespace-separated stream of signed integers
// with each clause terminated by a 0. Tautological clauses are dropped and
// duplicate literals within a clause are deduped, per the clause invariant
// in Clause.
func Parse(r io.Reader) (*Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var (
		line          int
		sawHeader     bool
		declaredVars  int
		declaredCls   int
		cur           []Lit
		dropped       int
		f             = &Formula{}
	)

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}
		if strings.HasPrefix(text, "p") {
			if sawHeader {
				return nil, &ParseError{Line: line, Msg: "duplicate header line"}
			}
			fields := strings.Fields(text)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, &ParseError{Line: line, Msg: "malformed header, want 'p cnf <vars> <clauses>'"}
			}
			nv, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "bad variable count: " + err.Error()}
			}
			nc, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "bad clause count: " + err.Error()}
			}
			declaredVars, declaredCls = nv, nc
			f.NumVars = nv
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, &ParseError{Line: line, Msg: "clause data before 'p cnf' header"}
		}
		for _, tok := range strings.Fields(text) {
			x, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "not an integer: " + tok}
			}
			if x == 0 {
				cl, tautology := NewClause(cur)
				cur = cur[:0]
				if !tautology {
					f.Clauses = append(f.Clauses, cl)
				} else {
					dropped++
				}
				continue
			}
			v := x
			if v < 0 {
				v = -v
			}
			if v > declaredVars {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("literal %d exceeds declared variable count %d", x, declaredVars)}
			}
			cur = append(cur, FromInt(int32(x)))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &IOError{Path: "<stream>", Err: err}
	}
	if !sawHeader {
		return nil, &ParseError{Line: line, Msg: "missing 'p cnf' header"}
	}
	if len(cur) != 0 {
		return nil, &ParseError{Line: line, Msg: "trailing clause not terminated by 0"}
	}
	if declaredCls != len(f.Clauses) {
		// Tautology-dropping can legitimately shrink this count, but a
		// shortfall of more than the dropped-tautology slack means the
		// file lied about its own shape.
		if len(f.Clauses) > declaredCls || len(f.Clauses)+dropped < declaredCls {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("header declared %d clauses, found %d", declaredCls, len(f.Clauses))}
		}
	}
	return f, nil
}

// WriteDIMACS renders f back to DIMACS CNF form.
func WriteDIMACS(w io.Writer, f *Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars, len(f.Clauses)); err != nil {
		return err
	}
	for _, cl := range f.Clauses {
		for _, l := range cl.Lits {
			if _, err := fmt.Fprintf(bw, "%d ", l.Int()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
