/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Trace corpus loading for the Akaylee Lexis inference engine.
Collects non-empty lines from the *.txt files of a directory and draws a
deterministic uniform sample with a fixed seed, so repeated runs over the
same corpus see the same traces.
*/

package corpus

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSampleSize is the number of traces kept when none is configured.
const DefaultSampleSize = 300

// Loader reads trace lines from a directory and samples them.
type Loader struct {
	SampleSize int
	Seed       int64
}

// NewLoader creates a loader with the given sample size (0 means keep all
// traces) and the fixed default seed.
func NewLoader(sampleSize int) *Loader {
	return &Loader{SampleSize: sampleSize}
}

// LoadTraces reads every *.txt file under dir, collects trimmed non-empty
// lines, shuffles them with the loader's seed, and returns at most
// SampleSize traces. A directory with no matching files yields an empty
// slice without error; unreadable files are reported.
func (l *Loader) LoadTraces(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*.txt")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list trace files in %s: %w", dir, err)
	}

	traces := make([]string, 0)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read trace file %s: %w", file, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if s := strings.TrimSpace(line); s != "" {
				traces = append(traces, s)
			}
		}
	}

	// Fixed seed: sampling must be reproducible across runs
	rng := rand.New(rand.NewSource(l.Seed))
	rng.Shuffle(len(traces), func(i, j int) {
		traces[i], traces[j] = traces[j], traces[i]
	})

	if l.SampleSize > 0 && len(traces) > l.SampleSize {
		traces = traces[:l.SampleSize]
	}
	return traces, nil
}
