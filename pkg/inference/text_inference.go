/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: text_inference.go
Description: Text grammar inference engine. Tokenizes a raw corpus, builds
token-category and operator-frequency inventories, decides whether the input
is code-like, and synthesizes tiered expression/statement productions (or a
noun-phrase/verb-phrase fallback for prose). Every conditionally referenced
non-terminal is paired with its defining production, so the emitted grammar
is well-formed by construction.
*/

package inference

import (
	"sort"

	"github.com/kleascm/akaylee-lexis/pkg/grammar"
	"github.com/kleascm/akaylee-lexis/pkg/lexer"
)

// Operator families, one per precedence tier, lowest precedence first.
// A tier is emitted only when at least one of its operators was observed.
var (
	bitFamily    = []string{"&", "|", "^", "<<", ">>"}
	relFamily    = []string{"<", ">", "<=", ">=", "==", "!="}
	addFamily    = []string{"+", "-"}
	mulFamily    = []string{"*", "/", "%"}
	assignFamily = []string{"=", "+=", "-=", "*=", "/=", "%="}
)

// structuralSignals are the strong code-shape signals: any one of these
// token values classifies the corpus as code-like on its own.
var structuralSignals = []string{";", "{", "}", "=", "if", "while", "for"}

// TextEngine infers a lexical grammar from raw text
type TextEngine struct{}

// NewTextEngine creates a new text inference engine
func NewTextEngine() *TextEngine {
	return &TextEngine{}
}

// Name returns the engine name
func (e *TextEngine) Name() string {
	return "text"
}

// Infer tokenizes the corpus and synthesizes a grammar with metrics. It
// cannot fail: empty or unrecognizable input falls back to the prose
// skeleton with placeholder vocabulary. The error return exists for Engine
// interface symmetry only.
func (e *TextEngine) Infer(corpus string) (*Result, error) {
	tokens := lexer.ReclassifyKeywords(lexer.Tokenize(corpus))
	inv := newInventory(tokens)

	b := grammar.NewBuilder().SetStart("Program")
	codeLike := inv.codeLike()
	if codeLike {
		synthesizeCode(inv, b)
	} else {
		synthesizeProse(inv, b)
	}

	// Terminal productions mirror the tokenizer patterns so the grammar
	// is self-contained regardless of shape.
	b.Add("ID", "/"+lexer.IdentifierPattern+"/")
	b.Add("NUM", "/"+lexer.NumberPattern+"/")
	b.Add("STR", "/"+lexer.StringPattern+"/")

	return &Result{
		Grammar:  b.Build(),
		Metrics:  inv.metrics(),
		CodeLike: codeLike,
	}, nil
}

// inventory partitions a token sequence for synthesis: non-keyword
// identifiers in source order, operator frequencies, the observed keyword
// set, and the full value set for the structural-signal test.
type inventory struct {
	tokens      []lexer.Token
	identifiers []string
	opCounts    map[string]int
	keywords    map[string]bool
	values      map[string]bool
}

func newInventory(tokens []lexer.Token) *inventory {
	inv := &inventory{
		tokens:   tokens,
		opCounts: make(map[string]int),
		keywords: make(map[string]bool),
		values:   make(map[string]bool),
	}
	for _, tok := range tokens {
		inv.values[tok.Value] = true
		switch tok.Category {
		case lexer.CategoryIdentifier:
			inv.identifiers = append(inv.identifiers, tok.Value)
		case lexer.CategoryOperator:
			inv.opCounts[tok.Value]++
		case lexer.CategoryKeyword:
			inv.keywords[tok.Value] = true
		}
	}
	return inv
}

// codeLike applies the shape heuristic: a structural signal token, or at
// least two distinct operators. Best-effort classification, not a guarantee.
func (inv *inventory) codeLike() bool {
	for _, sig := range structuralSignals {
		if inv.values[sig] {
			return true
		}
	}
	return len(inv.opCounts) >= 2
}

// observed filters an operator family down to the operators that actually
// occurred, preserving family order.
func (inv *inventory) observed(family []string) []string {
	out := make([]string, 0, len(family))
	for _, op := range family {
		if inv.opCounts[op] > 0 {
			out = append(out, op)
		}
	}
	return out
}

// metrics builds the summary record. Slices are sorted and never nil.
func (inv *inventory) metrics() Metrics {
	ops := make([]string, 0, len(inv.opCounts))
	for op := range inv.opCounts {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	kws := make([]string, 0, len(inv.keywords))
	for kw := range inv.keywords {
		kws = append(kws, kw)
	}
	sort.Strings(kws)

	return Metrics{
		NumTokens: len(inv.tokens),
		UniqueOps: ops,
		Keywords:  kws,
	}
}

// rankedIdentifiers returns up to limit distinct non-keyword identifiers
// ordered by frequency, ties broken by first occurrence.
func (inv *inventory) rankedIdentifiers(limit int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, id := range inv.identifiers {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// synthesizeCode emits the statement/expression grammar for code-like input.
// Statement forms and precedence tiers are included only when the triggering
// keyword or operator family was observed, and each inclusion emits the
// matching production.
func synthesizeCode(inv *inventory, b *grammar.Builder) {
	assignOps := inv.observed(assignFamily)

	b.Add("Program", "StmtList")
	b.Add("StmtList", "Stmt ';' StmtList", "Stmt", grammar.Epsilon)

	stmtAlts := make([]string, 0, 6)
	if len(assignOps) > 0 {
		stmtAlts = append(stmtAlts, "Assign")
	}
	stmtAlts = append(stmtAlts, "Expr")
	if inv.keywords["if"] {
		stmtAlts = append(stmtAlts, "If")
	}
	if inv.keywords["while"] {
		stmtAlts = append(stmtAlts, "While")
	}
	if inv.keywords["for"] {
		stmtAlts = append(stmtAlts, "For")
	}
	if inv.keywords["return"] {
		stmtAlts = append(stmtAlts, "Return")
	}
	b.Add("Stmt", stmtAlts...)

	if len(assignOps) > 0 {
		b.Add("Assign", "ID AssignOp Expr")
		b.Add("AssignOp", grammar.QuoteAll(assignOps)...)
	}

	if inv.keywords["return"] {
		b.Add("Return", "'return' Expr")
	}

	if inv.keywords["if"] {
		b.Add("If", "'if' '(' Expr ')' Stmt OptElse")
		if inv.keywords["else"] {
			b.Add("OptElse", "'else' Stmt", grammar.Epsilon)
		} else {
			b.Add("OptElse", grammar.Epsilon)
		}
	}

	if inv.keywords["while"] {
		b.Add("While", "'while' '(' Expr ')' Stmt")
	}

	if inv.keywords["for"] {
		b.Add("For", "'for' '(' OptAssign ';' OptExpr ';' OptAssign ')' Stmt")
		if len(assignOps) > 0 {
			b.Add("OptAssign", "Assign", grammar.Epsilon)
		} else {
			b.Add("OptAssign", grammar.Epsilon)
		}
		b.Add("OptExpr", "Expr", grammar.Epsilon)
	}

	type tier struct {
		name string
		ops  []string
	}
	tiers := make([]tier, 0, 4)
	if ops := inv.observed(bitFamily); len(ops) > 0 {
		tiers = append(tiers, tier{"BitExpr", ops})
	}
	if ops := inv.observed(relFamily); len(ops) > 0 {
		tiers = append(tiers, tier{"RelExpr", ops})
	}
	if ops := inv.observed(addFamily); len(ops) > 0 {
		tiers = append(tiers, tier{"AddExpr", ops})
	}
	if ops := inv.observed(mulFamily); len(ops) > 0 {
		tiers = append(tiers, tier{"MulExpr", ops})
	}

	// Never leave Expr undefined: minimal additive/multiplicative pair
	if len(tiers) == 0 {
		tiers = []tier{
			{"AddExpr", []string{"+", "-"}},
			{"MulExpr", []string{"*", "/"}},
		}
	}

	// Highest precedence tier sits closest to Factor; each tier iterates on
	// its left operand through the Tail production (left-associative).
	next := "Factor"
	for i := len(tiers) - 1; i >= 0; i-- {
		t := tiers[i]
		tail := t.name + "Tail"
		b.Add(t.name, next+" "+tail)

		tailAlts := make([]string, 0, len(t.ops)+1)
		for _, op := range t.ops {
			tailAlts = append(tailAlts, grammar.Quote(op)+" "+next+" "+tail)
		}
		tailAlts = append(tailAlts, grammar.Epsilon)
		b.Add(tail, tailAlts...)

		next = t.name
	}

	b.Add("Expr", tiers[0].name)
	b.Add("Factor", "ID", "NUM", "STR", "'(' Expr ')'")
}

// synthesizeProse emits the fixed NP/VP skeleton for natural-language-like
// input, with vocabulary drawn from the most frequent identifiers.
func synthesizeProse(inv *inventory, b *grammar.Builder) {
	ranked := inv.rankedIdentifiers(8)

	nouns := ranked
	if len(nouns) > 4 {
		nouns = ranked[:4]
	}
	if len(nouns) == 0 {
		nouns = []string{"thing", "idea"}
	}

	var verbs []string
	if len(ranked) > 4 {
		verbs = ranked[4:]
	}
	if len(verbs) == 0 {
		verbs = []string{"do", "make"}
	}

	b.Add("Program", "S")
	b.Add("S", "NP VP")
	b.Add("NP", "Det N")
	b.Add("VP", "V NP", "V")
	b.Add("Det", "'the'", "'a'")
	b.Add("N", grammar.QuoteAll(nouns)...)
	b.Add("V", grammar.QuoteAll(verbs)...)
}
