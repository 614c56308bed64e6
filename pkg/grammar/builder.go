/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder.go
Description: Incremental grammar builder. Accumulates productions in a fixed,
deterministic order as inclusion decisions are made, tracking which
non-terminals have been defined so the synthesizer can pair every conditional
reference with its defining production.
*/

package grammar

// Builder assembles a Grammar one production at a time. Insertion order is
// preserved in the built grammar.
type Builder struct {
	start       string
	productions []Production
	defined     map[string]bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		defined: make(map[string]bool),
	}
}

// SetStart records the start symbol.
func (b *Builder) SetStart(name string) *Builder {
	b.start = name
	return b
}

// Add appends a production and marks its name as defined.
func (b *Builder) Add(name string, alts ...string) *Builder {
	b.productions = append(b.productions, Production{Name: name, Alts: alts})
	b.defined[name] = true
	return b
}

// Defined reports whether a production for name has been added.
func (b *Builder) Defined(name string) bool {
	return b.defined[name]
}

// Build returns the assembled grammar.
func (b *Builder) Build() *Grammar {
	return &Grammar{
		Start:       b.start,
		Productions: b.productions,
	}
}
