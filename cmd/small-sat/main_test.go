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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDimacs(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.cnf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunSat(t *testing.T) {
	path := writeDimacs(t, "p cnf 1 1\n1 0\n")
	require.Equal(t, 0, run([]string{path}))
}

func TestRunUnsat(t *testing.T) {
	path := writeDimacs(t, "p cnf 1 2\n1 0\n-1 0\n")
	require.Equal(t, 0, run([]string{path}))
}

func TestRunParseError(t *testing.T) {
	path := writeDimacs(t, "not dimacs at all\n")
	require.Equal(t, 1, run([]string{path}))
}

func TestRunMissingFile(t *testing.T) {
	require.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.cnf")}))
}
