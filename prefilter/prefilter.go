// Package prefilter builds fast input pre-rejection filters from regex
// patterns.
//
// A whole-string match against a pattern implies that the input contains
// every mandatory literal factor of the branch it matched. The extractor
// finds one such factor per top-level alternation branch; if every branch has
// one, an input that contains none of them cannot possibly be accepted and is
// rejected without running the automaton. The filter never accepts on its
// own: a candidate input is always verified by the full automaton.
//
// Filter selection follows the literal count: a single literal is searched
// with the SWAR substring primitive, many literals with an Aho-Corasick
// automaton.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/rex/internal/simd"
)

// Prefilter pre-screens inputs for a compiled pattern.
type Prefilter interface {
	// CouldMatch reports whether input can possibly be accepted by the
	// pattern. False is definitive; true means "run the automaton".
	CouldMatch(input []byte) bool
}

// FromPattern builds a prefilter for a pattern that already compiled
// successfully. It returns nil when the pattern yields no usable literals:
// some branch has no mandatory factor of at least minLen bytes, or there are
// more than maxLiterals branches.
func FromPattern(pattern string, minLen, maxLiterals int) Prefilter {
	literals, ok := branchLiterals(pattern, minLen)
	if !ok || len(literals) == 0 || len(literals) > maxLiterals {
		return nil
	}
	if len(literals) == 1 {
		return &singleLiteral{needle: literals[0]}
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &multiLiteral{auto: auto}
}

// singleLiteral requires one mandatory factor to be present.
type singleLiteral struct {
	needle []byte
}

func (f *singleLiteral) CouldMatch(input []byte) bool {
	return simd.Memmem(input, f.needle) >= 0
}

// multiLiteral requires at least one of the per-branch factors to be present.
type multiLiteral struct {
	auto *ahocorasick.Automaton
}

func (f *multiLiteral) CouldMatch(input []byte) bool {
	return f.auto.IsMatch(input)
}
