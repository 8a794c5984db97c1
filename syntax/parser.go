// Package syntax parses regular expression patterns into scratch automata.
//
// The parser is a recursive descent over four precedence levels:
//
//	alternation := concatenation ('|' concatenation)*
//	concatenation := quantified quantified*
//	quantified := atom quantifier?
//	atom := '(' alternation ')' | '[' class ']' | escape | '.' | byte | ε
//
// Automaton construction is fused into parsing: every atom immediately
// becomes a small scratch automaton, and the higher levels compose those with
// Chain and Merge. State identifiers come from a single counter owned by the
// parser, so automata built for different subexpressions never collide and
// can be composed without renumbering; only quantifier copies need RenameAll.
package syntax

import (
	"github.com/coregx/rex/automaton"
)

// maxRepeat is the ceiling for numeric quantifier bounds.
const maxRepeat = 1000

// Parse compiles a pattern into a scratch automaton. The pattern is only
// borrowed for the duration of the call. Errors are *Error values carrying a
// kind and one of the fixed messages.
func Parse(pattern string) (*automaton.Scratch, error) {
	p := &parser{rest: pattern}
	a, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if len(p.rest) > 0 {
		return nil, invalidArgument("expected end of string")
	}
	return a, nil
}

type parser struct {
	rest string
	next automaton.StateID
}

// alloc returns a fresh state identifier.
func (p *parser) alloc() automaton.StateID {
	id := p.next
	p.next++
	return id
}

// consume strips c from the front of the remaining pattern if present.
func (p *parser) consume(c byte) bool {
	if len(p.rest) > 0 && p.rest[0] == c {
		p.rest = p.rest[1:]
		return true
	}
	return false
}

// parseAlternation parses the lowest precedence level, the pipe operator.
func (p *parser) parseAlternation() (*automaton.Scratch, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	for p.consume('|') {
		right, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		initial := p.alloc()
		final := p.alloc()
		left.Merge(right, initial, final)
	}
	return left, nil
}

// parseConcatenation parses a sequence of quantified pieces, chaining each
// onto the previous one. The sequence ends at end of input, at a closing
// paren, or at a pipe.
func (p *parser) parseConcatenation() (*automaton.Scratch, error) {
	piece, err := p.parseQuantified()
	if err != nil {
		return nil, err
	}
	for len(p.rest) > 0 && p.rest[0] != ')' && p.rest[0] != '|' {
		next, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		piece.Chain(next)
	}
	return piece, nil
}

// parseQuantified parses an atom and applies at most one trailing quantifier.
// A second quantifier in a row is left for the next atom parse, which rejects
// it as an operator in invalid position.
func (p *parser) parseQuantified() (*automaton.Scratch, error) {
	piece, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if len(p.rest) == 0 {
		return piece, nil
	}
	switch p.rest[0] {
	case '*':
		p.rest = p.rest[1:]
		return p.star(piece), nil
	case '+':
		p.rest = p.rest[1:]
		piece.AddEdge(0, piece.Final(), piece.Initial())
		return piece, nil
	case '?':
		p.rest = p.rest[1:]
		piece.AddEdge(0, piece.Initial(), piece.Final())
		return piece, nil
	case '{':
		p.rest = p.rest[1:]
		return p.parseRepetition(piece)
	}
	return piece, nil
}

// star applies the Kleene star by renaming the piece's initial state to its
// final state, so every edge leaving the entry now leaves the (accepting)
// exit and the piece can repeat any number of times.
func (p *parser) star(piece *automaton.Scratch) *automaton.Scratch {
	piece.RenameState(piece.Initial(), piece.Final())
	return piece
}

// freshCopy returns a copy of pristine renumbered into fresh identifiers,
// ready to be chained.
func (p *parser) freshCopy(pristine *automaton.Scratch) *automaton.Scratch {
	c := pristine.Clone()
	c.RenameAll(&p.next)
	return c
}

// parseRepetition parses the body of a bounded repetition; the opening brace
// has already been consumed. Whitespace is not allowed anywhere inside the
// braces.
func (p *parser) parseRepetition(piece *automaton.Scratch) (*automaton.Scratch, error) {
	// The quantifier transforms mutate piece, so keep a pristine copy for
	// stamping out the remaining repetitions.
	pristine := piece.Clone()

	min, hasMin := p.parseRepeatCount()
	if p.consume('}') {
		if !hasMin {
			// {} repeats any number of times, like star.
			return p.star(piece), nil
		}
		if min > maxRepeat {
			return nil, invalidArgument("numeric quantifiers greater than 1000 are not supported")
		}
		return p.repeatBounded(piece, pristine, min, min), nil
	}
	if !p.consume(',') {
		return nil, invalidArgument("invalid quantifier")
	}
	max, hasMax := p.parseRepeatCount()
	if !p.consume('}') {
		return nil, invalidArgument("invalid quantifier")
	}
	switch {
	case !hasMin && !hasMax:
		// {,} repeats any number of times, like star.
		return p.star(piece), nil
	case !hasMin:
		return nil, invalidArgument("invalid quantifier")
	case min > maxRepeat || (hasMax && max > maxRepeat):
		return nil, invalidArgument("numeric quantifiers greater than 1000 are not supported")
	case hasMax && max < min:
		return nil, invalidArgument("invalid quantifier")
	case hasMax:
		return p.repeatBounded(piece, pristine, min, max), nil
	default:
		return p.repeatUnbounded(piece, pristine, min), nil
	}
}

// parseRepeatCount consumes a run of decimal digits. The accumulator
// saturates just above the quantifier ceiling; the caller rejects anything
// over it, so the exact value of an absurd bound does not matter.
func (p *parser) parseRepeatCount() (int, bool) {
	n, digits := 0, 0
	for len(p.rest) > 0 && p.rest[0] >= '0' && p.rest[0] <= '9' {
		if n <= maxRepeat {
			n = n*10 + int(p.rest[0]-'0')
		}
		p.rest = p.rest[1:]
		digits++
	}
	return n, digits > 0
}

// repeatBounded builds min mandatory copies of the piece followed by
// max-min optional ones (each with an epsilon skipping it).
func (p *parser) repeatBounded(piece, pristine *automaton.Scratch, min, max int) *automaton.Scratch {
	result := piece
	if min == 0 {
		id := p.alloc()
		result = automaton.NewScratch(nil, id, id)
	}
	for i := 1; i < min; i++ {
		result.Chain(p.freshCopy(pristine))
	}
	for i := min; i < max; i++ {
		c := p.freshCopy(pristine)
		c.AddEdge(0, c.Initial(), c.Final())
		result.Chain(c)
	}
	return result
}

// repeatUnbounded builds min mandatory copies followed by one starred copy.
func (p *parser) repeatUnbounded(piece, pristine *automaton.Scratch, min int) *automaton.Scratch {
	if min == 0 {
		return p.star(piece)
	}
	result := piece
	for i := 1; i < min; i++ {
		result.Chain(p.freshCopy(pristine))
	}
	result.Chain(p.star(p.freshCopy(pristine)))
	return result
}

// parseAtom parses the highest precedence level: a single character, an
// escape code, a dot, round brackets, square brackets, or nothing. Lookahead
// at a pipe or a closing paren yields the empty atom so the callers above can
// handle the operator.
func (p *parser) parseAtom() (*automaton.Scratch, error) {
	start := p.alloc()
	if len(p.rest) == 0 {
		return automaton.NewScratch(nil, start, start), nil
	}
	if p.consume('(') {
		a, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if !p.consume(')') {
			return nil, invalidArgument("unmatched parens")
		}
		return a, nil
	}
	c := p.rest[0]
	switch c {
	case ')', '|':
		return automaton.NewScratch(nil, start, start), nil
	case '[':
		return p.parseClass()
	case ']':
		return nil, invalidArgument("unmatched square bracket")
	case '*', '+':
		return nil, invalidArgument("Kleene operator in invalid position")
	case '?':
		return nil, invalidArgument("question mark operator in invalid position")
	case '{', '}':
		return nil, invalidArgument("curly brackets in invalid position")
	case '^', '$':
		return nil, invalidArgument("anchors are disallowed in this position")
	case '.':
		p.rest = p.rest[1:]
		stop := p.alloc()
		a := automaton.NewScratch(nil, start, stop)
		for b := 1; b < 256; b++ {
			a.AddEdge(byte(b), start, stop)
		}
		return a, nil
	case '\\':
		p.rest = p.rest[1:]
		set, err := p.parseEscape(false)
		if err != nil {
			return nil, err
		}
		stop := p.alloc()
		a := automaton.NewScratch(nil, start, stop)
		for b := 0; b < 256; b++ {
			if set[b] {
				a.AddEdge(byte(b), start, stop)
			}
		}
		return a, nil
	default:
		p.rest = p.rest[1:]
		stop := p.alloc()
		a := automaton.NewScratch(nil, start, stop)
		a.AddEdge(c, start, stop)
		return a, nil
	}
}

// parseClass parses a character class. The leading '[' is still in the
// input. Listed bytes add edges for a plain class and remove them from the
// full fan for a negated one, so duplicate items are harmless either way.
func (p *parser) parseClass() (*automaton.Scratch, error) {
	p.rest = p.rest[1:] // '['
	start := p.alloc()
	stop := p.alloc()
	a := automaton.NewScratch(nil, start, stop)
	negated := p.consume('^')
	if negated {
		for b := 1; b < 256; b++ {
			a.AddEdge(byte(b), start, stop)
		}
	}
	first := true
	for !p.consume(']') {
		if len(p.rest) == 0 {
			return nil, invalidArgument("unmatched square bracket")
		}
		var set byteSet
		switch {
		case p.rest[0] == '-' && !first && len(p.rest) > 1 && p.rest[1] != ']':
			// A c-d construct; a leading or trailing '-' is a literal.
			return nil, unimplemented("ranges in character classes")
		case p.rest[0] == '\\':
			p.rest = p.rest[1:]
			var err error
			set, err = p.parseEscape(true)
			if err != nil {
				return nil, err
			}
		default:
			set.add(p.rest[0])
			p.rest = p.rest[1:]
		}
		for b := 0; b < 256; b++ {
			if !set[b] {
				continue
			}
			if negated {
				a.ClearEdges(byte(b), start)
			} else {
				a.AddEdge(byte(b), start, stop)
			}
		}
		first = false
	}
	return a, nil
}
