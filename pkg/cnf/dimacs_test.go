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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	in := "c a comment\np cnf 3 2\n1 -2 0\n2 3 -1 0\n"
	f, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, f.NumVars)
	require.Len(t, f.Clauses, 2)
}

func TestParseDropsTautology(t *testing.T) {
	in := "p cnf 2 1\n1 -1 2 0\n"
	f, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Empty(t, f.Clauses)
}

func TestParseDedupsLiterals(t *testing.T) {
	in := "p cnf 2 1\n1 2 1 0\n"
	f, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, f.Clauses, 1)
	require.Len(t, f.Clauses[0].Lits, 2)
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseRejectsOutOfRangeLiteral(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1 1\n2 0\n"))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	in := "p cnf 4 3\n1 -2 0\n2 3 -4 0\n-1 4 0\n"
	f, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDIMACS(&buf, f))

	f2, err := Parse(&buf)
	require.NoError(t, err)

	lits := func(f *Formula) [][]int32 {
		out := make([][]int32, len(f.Clauses))
		for i, cl := range f.Clauses {
			for _, l := range cl.Lits {
				out[i] = append(out[i], l.Int())
			}
		}
		return out
	}
	if diff := cmp.Diff(lits(f), lits(f2)); diff != "" {
		t.Fatalf("round trip mismatch:\n%s", diff)
	}
}
