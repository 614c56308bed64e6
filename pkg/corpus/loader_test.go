/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader_test.go
Description: Unit tests for trace corpus loading. Covers line collection
from *.txt files, blank-line filtering, deterministic seeded sampling, and
behavior for empty or missing directories.
*/

package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-lexis/pkg/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTraceFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

// TestLoadTracesCollectsLines verifies trimmed non-empty lines are gathered
// from every *.txt file
func TestLoadTracesCollectsLines(t *testing.T) {
	dir := t.TempDir()
	writeTraceFile(t, dir, "a.txt", "x = 1;\n\n  y = 2;  \n")
	writeTraceFile(t, dir, "b.txt", "the cat sat\n")
	writeTraceFile(t, dir, "ignored.log", "not a trace\n")

	loader := corpus.NewLoader(0)
	traces, err := loader.LoadTraces(dir)
	require.NoError(t, err)

	assert.Len(t, traces, 3)
	assert.ElementsMatch(t, []string{"x = 1;", "y = 2;", "the cat sat"}, traces)
}

// TestLoadTracesDeterministic verifies the fixed-seed shuffle: repeated
// loads of the same corpus return the same sample in the same order
func TestLoadTracesDeterministic(t *testing.T) {
	dir := t.TempDir()
	content := ""
	for i := 0; i < 50; i++ {
		content += string(rune('a'+i%26)) + " trace line\n"
	}
	writeTraceFile(t, dir, "traces.txt", content)

	loader := corpus.NewLoader(10)

	first, err := loader.LoadTraces(dir)
	require.NoError(t, err)
	second, err := loader.LoadTraces(dir)
	require.NoError(t, err)

	assert.Len(t, first, 10)
	assert.Equal(t, first, second)
}

// TestLoadTracesSampleLimit verifies the sample size cap and that zero
// means keep everything
func TestLoadTracesSampleLimit(t *testing.T) {
	dir := t.TempDir()
	writeTraceFile(t, dir, "traces.txt", "one\ntwo\nthree\nfour\nfive\n")

	limited, err := corpus.NewLoader(2).LoadTraces(dir)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	all, err := corpus.NewLoader(0).LoadTraces(dir)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

// TestLoadTracesEmptyDir verifies a directory without trace files yields an
// empty slice, not an error
func TestLoadTracesEmptyDir(t *testing.T) {
	traces, err := corpus.NewLoader(100).LoadTraces(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, traces)
}

// TestLoadTracesMissingDir verifies a nonexistent directory behaves like an
// empty corpus
func TestLoadTracesMissingDir(t *testing.T) {
	traces, err := corpus.NewLoader(100).LoadTraces(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, traces)
}
