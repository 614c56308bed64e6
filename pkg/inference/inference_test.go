/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference_test.go
Description: Comprehensive tests for the lexical grammar inference engine.
Tests code-like shape detection, conditional statement forms, precedence tier
construction and omission, the natural-language fallback, metrics, request
boundary decoding, and the grammar well-formedness guarantee.
*/

package inference_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/kleascm/akaylee-lexis/pkg/inference"
	"github.com/kleascm/akaylee-lexis/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Juicy metrics registry ---
type TestResult struct {
	Name       string  `json:"name"`
	Passed     bool    `json:"passed"`
	Error      string  `json:"error,omitempty"`
	DurationMs float64 `json:"duration_ms"`
}

var (
	testResults []TestResult
	suiteStart  time.Time
	suiteEnd    time.Time
)

func recordTestResult(name string, passed bool, errMsg string, duration time.Duration) {
	testResults = append(testResults, TestResult{
		Name:       name,
		Passed:     passed,
		Error:      errMsg,
		DurationMs: float64(duration.Microseconds()) / 1000.0,
	})
}

// --- Test wrappers ---

func runTest(t *testing.T, name string, testFunc func(t *testing.T)) {
	start := time.Now()
	var errMsg string
	passed := true
	defer func() {
		if r := recover(); r != nil {
			errMsg = fmt.Sprintf("panic: %v", r)
			passed = false
		}
		dur := time.Since(start)
		recordTestResult(name, passed && !t.Failed(), errMsg, dur)
	}()

	testFunc(t)
}

func TestEngineCreation(t *testing.T) {
	runTest(t, "TestEngineCreation", func(t *testing.T) {
		engine := inference.NewTextEngine()
		require.NotNil(t, engine)
		assert.Equal(t, "text", engine.Name())
	})
}

// TestCodeLikeDetection checks that structural signals classify input as
// code-like and bring in the matching statement forms
func TestCodeLikeDetection(t *testing.T) {
	runTest(t, "TestCodeLikeDetection", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("if (x) { y = 1; }")
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.True(t, result.CodeLike)
		require.NoError(t, result.Grammar.Validate())

		stmt, ok := result.Grammar.Find("Stmt")
		require.True(t, ok)
		assert.Contains(t, stmt.Alts, "If")
		assert.Contains(t, stmt.Alts, "Assign")
		assert.Contains(t, stmt.Alts, "Expr")

		assignOp, ok := result.Grammar.Find("AssignOp")
		require.True(t, ok)
		assert.Equal(t, []string{"'='"}, assignOp.Alts)

		// No else observed: OptElse collapses to the empty form
		optElse, ok := result.Grammar.Find("OptElse")
		require.True(t, ok)
		assert.Equal(t, []string{"ε"}, optElse.Alts)
	})
}

// TestKeywordStatementForms checks that only observed keywords get their
// statement productions
func TestKeywordStatementForms(t *testing.T) {
	runTest(t, "TestKeywordStatementForms", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("while (x) { return y; }")
		require.NoError(t, err)

		stmt, ok := result.Grammar.Find("Stmt")
		require.True(t, ok)
		assert.Contains(t, stmt.Alts, "While")
		assert.Contains(t, stmt.Alts, "Return")
		assert.NotContains(t, stmt.Alts, "If")
		assert.NotContains(t, stmt.Alts, "For")

		_, ok = result.Grammar.Find("While")
		assert.True(t, ok)
		_, ok = result.Grammar.Find("Return")
		assert.True(t, ok)
		_, ok = result.Grammar.Find("If")
		assert.False(t, ok)

		require.NoError(t, result.Grammar.Validate())
	})
}

// TestForWithoutAssignment checks that a for loop with no observed
// assignment operator still yields a well-formed grammar
func TestForWithoutAssignment(t *testing.T) {
	runTest(t, "TestForWithoutAssignment", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("for")
		require.NoError(t, err)
		assert.True(t, result.CodeLike)

		optAssign, ok := result.Grammar.Find("OptAssign")
		require.True(t, ok)
		assert.Equal(t, []string{"ε"}, optAssign.Alts)

		_, ok = result.Grammar.Find("Assign")
		assert.False(t, ok)

		require.NoError(t, result.Grammar.Validate())
	})
}

// TestTierOmission checks that unobserved operator families emit no tier:
// with only additive operators, Expr resolves to the additive tier directly
func TestTierOmission(t *testing.T) {
	runTest(t, "TestTierOmission", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("a + b - c")
		require.NoError(t, err)
		assert.True(t, result.CodeLike)

		_, ok := result.Grammar.Find("MulExpr")
		assert.False(t, ok)
		_, ok = result.Grammar.Find("BitExpr")
		assert.False(t, ok)
		_, ok = result.Grammar.Find("RelExpr")
		assert.False(t, ok)

		expr, ok := result.Grammar.Find("Expr")
		require.True(t, ok)
		assert.Equal(t, []string{"AddExpr"}, expr.Alts)

		// The additive tier iterates over Factor directly
		addTail, ok := result.Grammar.Find("AddExprTail")
		require.True(t, ok)
		assert.Equal(t, []string{"'+' Factor AddExprTail", "'-' Factor AddExprTail", "ε"}, addTail.Alts)

		require.NoError(t, result.Grammar.Validate())
	})
}

// TestTierFallback checks that code-like input with no operators still
// defines Expr through the minimal additive/multiplicative pair
func TestTierFallback(t *testing.T) {
	runTest(t, "TestTierFallback", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("x;")
		require.NoError(t, err)
		assert.True(t, result.CodeLike)

		expr, ok := result.Grammar.Find("Expr")
		require.True(t, ok)
		assert.Equal(t, []string{"AddExpr"}, expr.Alts)

		_, ok = result.Grammar.Find("MulExpr")
		assert.True(t, ok)

		require.NoError(t, result.Grammar.Validate())
	})
}

// TestTierChaining checks precedence ordering across observed families
func TestTierChaining(t *testing.T) {
	runTest(t, "TestTierChaining", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("a < b + c * d;")
		require.NoError(t, err)

		expr, ok := result.Grammar.Find("Expr")
		require.True(t, ok)
		assert.Equal(t, []string{"RelExpr"}, expr.Alts)

		rel, ok := result.Grammar.Find("RelExpr")
		require.True(t, ok)
		assert.Equal(t, []string{"AddExpr RelExprTail"}, rel.Alts)

		add, ok := result.Grammar.Find("AddExpr")
		require.True(t, ok)
		assert.Equal(t, []string{"MulExpr AddExprTail"}, add.Alts)

		mul, ok := result.Grammar.Find("MulExpr")
		require.True(t, ok)
		assert.Equal(t, []string{"Factor MulExprTail"}, mul.Alts)

		require.NoError(t, result.Grammar.Validate())
	})
}

// TestNaturalLanguageFallback checks the NP/VP skeleton for prose input
func TestNaturalLanguageFallback(t *testing.T) {
	runTest(t, "TestNaturalLanguageFallback", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("the cat sat")
		require.NoError(t, err)
		assert.False(t, result.CodeLike)

		s, ok := result.Grammar.Find("S")
		require.True(t, ok)
		assert.Equal(t, []string{"NP VP"}, s.Alts)

		det, ok := result.Grammar.Find("Det")
		require.True(t, ok)
		assert.Equal(t, []string{"'the'", "'a'"}, det.Alts)

		// All three identifiers tie at one occurrence: first-occurrence order
		n, ok := result.Grammar.Find("N")
		require.True(t, ok)
		assert.Equal(t, []string{"'the'", "'cat'", "'sat'"}, n.Alts)

		// Fewer than five identifiers: verb placeholders
		v, ok := result.Grammar.Find("V")
		require.True(t, ok)
		assert.Equal(t, []string{"'do'", "'make'"}, v.Alts)

		require.NoError(t, result.Grammar.Validate())
	})
}

// TestNaturalLanguageFrequencyRanking checks vocabulary ordering by
// frequency with first-occurrence tie-breaks
func TestNaturalLanguageFrequencyRanking(t *testing.T) {
	runTest(t, "TestNaturalLanguageFrequencyRanking", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("dog cat dog bird cat dog fish ant bee")
		require.NoError(t, err)
		assert.False(t, result.CodeLike)

		// dog ×3, cat ×2, then bird/fish/ant/bee ×1 in first-occurrence order
		n, ok := result.Grammar.Find("N")
		require.True(t, ok)
		assert.Equal(t, []string{"'dog'", "'cat'", "'bird'", "'fish'"}, n.Alts)

		v, ok := result.Grammar.Find("V")
		require.True(t, ok)
		assert.Equal(t, []string{"'ant'", "'bee'"}, v.Alts)
	})
}

// TestEmptyInput checks the empty-corpus guarantees: zero metrics and the
// placeholder prose skeleton
func TestEmptyInput(t *testing.T) {
	runTest(t, "TestEmptyInput", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("")
		require.NoError(t, err)

		assert.False(t, result.CodeLike)
		assert.Equal(t, 0, result.Metrics.NumTokens)
		assert.Empty(t, result.Metrics.UniqueOps)
		assert.Empty(t, result.Metrics.Keywords)

		n, ok := result.Grammar.Find("N")
		require.True(t, ok)
		assert.Equal(t, []string{"'thing'", "'idea'"}, n.Alts)

		v, ok := result.Grammar.Find("V")
		require.True(t, ok)
		assert.Equal(t, []string{"'do'", "'make'"}, v.Alts)

		require.NoError(t, result.Grammar.Validate())
	})
}

// TestTerminalProductions checks that ID/NUM/STR are always appended
func TestTerminalProductions(t *testing.T) {
	runTest(t, "TestTerminalProductions", func(t *testing.T) {
		for _, corpus := range []string{"", "x = 1;", "the cat sat"} {
			result, err := inference.NewTextEngine().Infer(corpus)
			require.NoError(t, err)

			id, ok := result.Grammar.Find("ID")
			require.True(t, ok)
			assert.Equal(t, []string{"/[A-Za-z_][A-Za-z0-9_]*/"}, id.Alts)

			_, ok = result.Grammar.Find("NUM")
			assert.True(t, ok)
			_, ok = result.Grammar.Find("STR")
			assert.True(t, ok)
		}
	})
}

// TestMetrics checks token counts and the sorted distinct operator and
// keyword sets
func TestMetrics(t *testing.T) {
	runTest(t, "TestMetrics", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("while (b > a) { a += 1; }")
		require.NoError(t, err)

		assert.Equal(t, 12, result.Metrics.NumTokens)
		assert.Equal(t, []string{"+=", ">"}, result.Metrics.UniqueOps)
		assert.Equal(t, []string{"while"}, result.Metrics.Keywords)
	})
}

// TestDeterminism checks byte-identical output for repeated invocations
func TestDeterminism(t *testing.T) {
	runTest(t, "TestDeterminism", func(t *testing.T) {
		corpus := `if (a < b) { c = "str"; } else { d *= 2; } words and more words`

		first, err := inference.NewTextEngine().Infer(corpus)
		require.NoError(t, err)
		second, err := inference.NewTextEngine().Infer(corpus)
		require.NoError(t, err)

		assert.Equal(t, first.Grammar.String(), second.Grammar.String())
		assert.Equal(t, first.Metrics, second.Metrics)
	})
}

// TestWellFormednessAcrossInputs checks the invariant for a spread of
// shapes: every referenced non-terminal is defined
func TestWellFormednessAcrossInputs(t *testing.T) {
	runTest(t, "TestWellFormednessAcrossInputs", func(t *testing.T) {
		inputs := []string{
			"",
			"plain prose with no structure at all",
			"x = 1;",
			"if (a) { b; } else { c; }",
			"for (i = 0; i < 10; i += 1) { s = s + i; }",
			"a & b | c ^ d << e >> f",
			"return x * y / z % w;",
			`labels: "quoted" '也' mixed 42 ::`,
			"while for if return else",
		}

		for _, corpus := range inputs {
			result, err := inference.NewTextEngine().Infer(corpus)
			require.NoError(t, err, "corpus: %q", corpus)
			assert.NoError(t, result.Grammar.Validate(), "corpus: %q", corpus)
		}
	})
}

// TestRequestBoundary checks JSON request decoding and its single failure
// mode
func TestRequestBoundary(t *testing.T) {
	runTest(t, "TestRequestBoundary", func(t *testing.T) {
		result, err := inference.InferRequest([]byte(`{"corpus": "x = 1;"}`))
		require.NoError(t, err)
		assert.True(t, result.CodeLike)

		// Empty payload behaves as an empty corpus
		result, err = inference.InferRequest([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, 0, result.Metrics.NumTokens)

		// Malformed payload is the only caller-visible error
		_, err = inference.InferRequest([]byte("{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode inference request")
	})
}

// TestResponseRendering checks the boundary serialization shape
func TestResponseRendering(t *testing.T) {
	runTest(t, "TestResponseRendering", func(t *testing.T) {
		result, err := inference.NewTextEngine().Infer("x = 1;")
		require.NoError(t, err)

		resp := inference.NewResponse(result)
		assert.Equal(t, result.Grammar.String(), resp.Grammar)
		assert.Equal(t, result.Metrics, resp.Metrics)
	})
}

// TestMain for inference tests to collect and write metrics
func TestMain(m *testing.M) {
	suiteStart = time.Now()
	code := m.Run()
	suiteEnd = time.Now()

	total := len(testResults)
	passed := 0
	failed := 0
	for _, r := range testResults {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}

	summary := map[string]interface{}{
		"timestamp":        suiteStart.Format("2006-01-02 15:04:05"),
		"version":          "1.0.0",
		"total_tests":      total,
		"passed":           passed,
		"failed":           failed,
		"start_time":       suiteStart.Format(time.RFC3339),
		"end_time":         suiteEnd.Format(time.RFC3339),
		"duration_seconds": suiteEnd.Sub(suiteStart).Seconds(),
		"tests":            testResults,
	}

	if path, err := utils.WriteMetricsResult("inference", "1.0.0", summary); err != nil {
		fmt.Printf("[WARN] Failed to write inference test metrics: %v\n", err)
	} else {
		fmt.Printf("[INFO] Inference test metrics written to %s\n", path)
	}

	os.Exit(code)
}
