/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Main entry point for lexical grammar inference. Provides the
Engine interface and the result/metrics records produced by a single
inference pass over a trace corpus. Engines are stateless: one corpus in,
one grammar and metrics record out, nothing shared across invocations.
*/

package inference

import (
	"github.com/kleascm/akaylee-lexis/pkg/grammar"
)

// Engine defines the interface for grammar inference engines
type Engine interface {
	// Infer analyzes a raw corpus and produces a grammar with metrics.
	Infer(corpus string) (*Result, error)
	// Name returns the engine name.
	Name() string
}

// Metrics summarizes a single inference pass. Slices are sorted so that
// identical corpora produce byte-identical serialized metrics.
type Metrics struct {
	NumTokens int      `json:"num_tokens"`
	UniqueOps []string `json:"unique_ops"`
	Keywords  []string `json:"has_keywords"`
}

// Result is the outcome of one inference pass: the synthesized grammar and
// its summary metrics. Results are created fresh per invocation and carry no
// lifecycle beyond the response.
type Result struct {
	Grammar  *grammar.Grammar `json:"grammar"`
	Metrics  Metrics          `json:"metrics"`
	CodeLike bool             `json:"code_like"`
}

// Response is the serialized form of a Result at the invocation boundary:
// the grammar rendered as text plus the metrics record.
type Response struct {
	Grammar string  `json:"grammar"`
	Metrics Metrics `json:"metrics"`
}

// NewResponse renders a result into its boundary form.
func NewResponse(result *Result) *Response {
	return &Response{
		Grammar: result.Grammar.String(),
		Metrics: result.Metrics,
	}
}

// NewEngine returns the default inference engine
func NewEngine() Engine {
	return NewTextEngine()
}
