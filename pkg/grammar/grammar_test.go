/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar_test.go
Description: Unit tests for the grammar model and builder. Covers production
rendering, deterministic grammar text output, builder insertion order, and
the well-formedness validation of non-terminal references.
*/

package grammar_test

import (
	"testing"

	"github.com/kleascm/akaylee-lexis/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProductionString verifies alternative rendering
func TestProductionString(t *testing.T) {
	p := grammar.Production{Name: "VP", Alts: []string{"V NP", "V"}}
	assert.Equal(t, "VP -> V NP | V", p.String())
}

// TestGrammarString verifies the semicolon-terminated rule list rendering
// with the start directive first
func TestGrammarString(t *testing.T) {
	g := grammar.NewBuilder().
		SetStart("Program").
		Add("Program", "S").
		Add("S", "'x'", grammar.Epsilon).
		Build()

	expected := "start: Program;\nProgram -> S;\nS -> 'x' | ε;"
	assert.Equal(t, expected, g.String())
}

// TestBuilderOrder verifies insertion order is preserved and Defined tracks
// added productions
func TestBuilderOrder(t *testing.T) {
	b := grammar.NewBuilder().SetStart("A")
	b.Add("A", "B")
	assert.True(t, b.Defined("A"))
	assert.False(t, b.Defined("B"))
	b.Add("B", "'b'")

	g := b.Build()
	require.Len(t, g.Productions, 2)
	assert.Equal(t, "A", g.Productions[0].Name)
	assert.Equal(t, "B", g.Productions[1].Name)
}

// TestFind verifies production lookup by name
func TestFind(t *testing.T) {
	g := grammar.NewBuilder().SetStart("A").Add("A", "'a'").Build()

	p, ok := g.Find("A")
	require.True(t, ok)
	assert.Equal(t, []string{"'a'"}, p.Alts)

	_, ok = g.Find("Missing")
	assert.False(t, ok)
}

// TestValidateWellFormed verifies a fully defined grammar passes
func TestValidateWellFormed(t *testing.T) {
	g := grammar.NewBuilder().
		SetStart("Program").
		Add("Program", "Expr").
		Add("Expr", "Factor ExprTail").
		Add("ExprTail", "'+' Factor ExprTail", grammar.Epsilon).
		Add("Factor", "ID", "'(' Expr ')'").
		Add("ID", "/[A-Za-z_][A-Za-z0-9_]*/").
		Build()

	assert.NoError(t, g.Validate())
}

// TestValidateDanglingReference verifies an undefined non-terminal is caught
func TestValidateDanglingReference(t *testing.T) {
	g := grammar.NewBuilder().
		SetStart("Program").
		Add("Program", "Stmt").
		Build()

	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stmt")
}

// TestValidateUndefinedStart verifies the start symbol must be defined
func TestValidateUndefinedStart(t *testing.T) {
	g := grammar.NewBuilder().SetStart("Program").Add("S", "'x'").Build()

	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start symbol")
}

// TestQuote verifies terminal quoting helpers
func TestQuote(t *testing.T) {
	assert.Equal(t, "'+'", grammar.Quote("+"))
	assert.Equal(t, []string{"'a'", "'b'"}, grammar.QuoteAll([]string{"a", "b"}))
}
