/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: lexer.go
Description: Tokenizer core for the Akaylee Lexis grammar inference engine.
Scans raw text left-to-right with a fixed, ordered set of recognizers (quoted
strings, identifiers, numbers, multi-character operators before their
single-character prefixes, punctuation) and emits classified tokens in source
order. Characters matching no recognizer are skipped.
*/

package lexer

import (
	"regexp"
	"strings"
)

// operators is the fixed operator catalog. Multi-character symbols come
// first so that a prefix like '=' can never shadow '=='.
var operators = []string{
	"==", "!=", "<=", ">=", "&&", "||", "+=", "-=", "*=", "/=", "%=",
	"++", "--", "->", "::", "<<", ">>",
	"<", ">", "=", "+", "-", "*", "/", "%", "^", "&", "|", "~", "!",
}

// punctuation is the fixed set of single structural characters.
const punctuation = "(){}[];,.:?"

var (
	stringRe     = regexp.MustCompile(`^(?:` + StringPattern + `)`)
	identifierRe = regexp.MustCompile(`^(?:` + IdentifierPattern + `)`)
	numberRe     = regexp.MustCompile(`^(?:` + NumberPattern + `)`)
)

// Operators returns a copy of the operator catalog in match order.
func Operators() []string {
	out := make([]string, len(operators))
	copy(out, operators)
	return out
}

// IsOperator reports whether symbol is in the operator catalog.
func IsOperator(symbol string) bool {
	for _, op := range operators {
		if op == symbol {
			return true
		}
	}
	return false
}

// Tokenize segments text into classified tokens. The first recognizer that
// matches at a position wins and the scan advances past the match; bytes no
// recognizer accepts contribute no token. Tokenize never fails: empty input
// yields an empty slice.
//
// Keywords are not recognized here. Reserved words come out as identifiers
// and are promoted by ReclassifyKeywords afterwards.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0)

	for i := 0; i < len(text); {
		rest := text[i:]

		if m := stringRe.FindString(rest); m != "" {
			tokens = append(tokens, Token{Value: m, Category: CategoryString})
			i += len(m)
			continue
		}

		if m := identifierRe.FindString(rest); m != "" {
			tokens = append(tokens, Token{Value: m, Category: CategoryIdentifier})
			i += len(m)
			continue
		}

		if m := numberRe.FindString(rest); m != "" {
			tokens = append(tokens, Token{Value: m, Category: CategoryNumber})
			i += len(m)
			continue
		}

		if op := matchOperator(rest); op != "" {
			tokens = append(tokens, Token{Value: op, Category: CategoryOperator})
			i += len(op)
			continue
		}

		if strings.ContainsRune(punctuation, rune(rest[0])) {
			tokens = append(tokens, Token{Value: rest[0:1], Category: CategoryPunctuation})
			i++
			continue
		}

		// Whitespace or a symbol outside the catalog
		i++
	}

	return tokens
}

// matchOperator returns the longest operator that prefixes rest, or "".
func matchOperator(rest string) string {
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}
	return ""
}

// ReclassifyKeywords is a pure pass over a token sequence that promotes any
// identifier whose text is a reserved word to the keyword category. The input
// slice is not modified.
func ReclassifyKeywords(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		if tok.Category == CategoryIdentifier && IsKeyword(tok.Value) {
			tok.Category = CategoryKeyword
		}
		out[i] = tok
	}
	return out
}
