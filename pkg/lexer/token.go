/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: token.go
Description: Token model for the Akaylee Lexis tokenizer. Defines the lexical
categories, the immutable classified token type, the reserved keyword set, and
the terminal patterns shared between tokenization and grammar emission.
*/

package lexer

// Category is the lexical class of a token. Categories are mutually
// exclusive: a token carries exactly one, assigned when it is created.
type Category string

const (
	CategoryIdentifier  Category = "identifier"
	CategoryNumber      Category = "number"
	CategoryString      Category = "string"
	CategoryOperator    Category = "operator"
	CategoryPunctuation Category = "punctuation"
	CategoryKeyword     Category = "keyword"
)

// Token is a classified span of source text. Tokens are produced once and
// never mutated; their order in a slice matches source order.
type Token struct {
	Value    string   `json:"value"`
	Category Category `json:"category"`
}

// Terminal patterns. These exact strings are also rendered into the ID/NUM/STR
// productions of every emitted grammar, keeping the grammar self-contained.
const (
	IdentifierPattern = `[A-Za-z_][A-Za-z0-9_]*`
	NumberPattern     = `(?:0|[1-9][0-9]*)`
	StringPattern     = `"([^"\\]|\\.)*"|'([^'\\]|\\.)*'`
)

// keywords is the reserved word set. The tokenizer never consults it;
// promotion from identifier to keyword is a separate pass (ReclassifyKeywords).
var keywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true, "return": true,
	"switch": true, "case": true, "break": true, "continue": true,
	"def": true, "class": true, "try": true, "except": true, "finally": true,
	"with": true, "lambda": true, "func": true, "var": true, "let": true,
	"const": true,
}

// IsKeyword reports whether word is in the reserved keyword set.
func IsKeyword(word string) bool {
	return keywords[word]
}
