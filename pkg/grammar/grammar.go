/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Grammar model for the Akaylee Lexis inference engine. A grammar
is an ordered, flat list of production rules plus a start directive. Provides
deterministic text rendering and a well-formedness check guaranteeing that
every referenced non-terminal is defined within the same grammar.
*/

package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Epsilon is the empty alternative.
const Epsilon = "ε"

// Production is a single grammar rule: a non-terminal name and its
// alternatives. Each alternative is a space-separated sequence of terminals
// (quoted or pattern form) and non-terminal names.
type Production struct {
	Name string   `json:"name"`
	Alts []string `json:"alts"`
}

// String renders the production as "Name -> alt_1 | alt_2 | ...".
func (p Production) String() string {
	return p.Name + " -> " + strings.Join(p.Alts, " | ")
}

// Grammar is an ordered sequence of productions with a designated start
// symbol. The list is flat: order is the emission order, not a tree.
type Grammar struct {
	Start       string       `json:"start"`
	Productions []Production `json:"productions"`
}

// Find returns the production defining name, if any.
func (g *Grammar) Find(name string) (Production, bool) {
	for _, p := range g.Productions {
		if p.Name == name {
			return p, true
		}
	}
	return Production{}, false
}

// String renders the grammar as a semicolon-terminated rule list, one rule
// per line, with the start directive first. Rendering is deterministic:
// identical grammars produce byte-identical text.
func (g *Grammar) String() string {
	lines := make([]string, 0, len(g.Productions)+1)
	if g.Start != "" {
		lines = append(lines, "start: "+g.Start)
	}
	for _, p := range g.Productions {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, ";\n") + ";"
}

// nonTerminalRe matches a bare symbol that counts as a non-terminal
// reference. Quoted terminals, pattern terminals, and ε are excluded before
// this is consulted.
var nonTerminalRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the well-formedness invariant: every non-terminal
// referenced on the right-hand side of any production must itself be defined
// as the left-hand side of some production in this grammar, and the start
// symbol must be defined.
func (g *Grammar) Validate() error {
	defined := make(map[string]bool, len(g.Productions))
	for _, p := range g.Productions {
		defined[p.Name] = true
	}

	if g.Start != "" && !defined[g.Start] {
		return fmt.Errorf("start symbol %q is not defined", g.Start)
	}

	for _, p := range g.Productions {
		for _, alt := range p.Alts {
			for _, sym := range strings.Fields(alt) {
				if isTerminal(sym) {
					continue
				}
				if nonTerminalRe.MatchString(sym) && !defined[sym] {
					return fmt.Errorf("production %q references undefined non-terminal %q", p.Name, sym)
				}
			}
		}
	}

	return nil
}

// isTerminal reports whether sym is a terminal form: a quoted literal, a
// /pattern/ terminal, or the empty alternative.
func isTerminal(sym string) bool {
	if sym == Epsilon {
		return true
	}
	if strings.HasPrefix(sym, "'") {
		return true
	}
	return strings.HasPrefix(sym, "/")
}

// Quote wraps a terminal symbol in single quotes for rendering.
func Quote(symbol string) string {
	return "'" + symbol + "'"
}

// QuoteAll quotes every symbol in order.
func QuoteAll(symbols []string) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = Quote(s)
	}
	return out
}
