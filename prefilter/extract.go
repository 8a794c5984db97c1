package prefilter

// branchLiterals splits a valid pattern at its top-level alternation bars and
// extracts one mandatory literal factor per branch: the longest run of
// literal bytes that every accepted input of that branch must contain.
//
// The scan is deliberately conservative. Runs only accumulate at nesting
// depth zero outside character classes; groups, classes, dots and class-style
// escapes break the current run, and a byte made optional by a following
// quantifier is dropped from it. A branch whose best run is shorter than
// minLen disqualifies the whole pattern (ok=false), because the filter is
// only sound when every branch contributes a factor.
func branchLiterals(pattern string, minLen int) (literals [][]byte, ok bool) {
	var branches [][]byte
	var best, run []byte
	depth := 0

	endRun := func() {
		if len(run) > len(best) {
			best = append([]byte(nil), run...)
		}
		run = run[:0]
	}
	endBranch := func() {
		endRun()
		branches = append(branches, best)
		best = nil
	}

	// appendLiteral adds b to the current run unless the quantifier that
	// follows at position i makes it optional or repeated.
	appendLiteral := func(b byte, i int) {
		if i < len(pattern) {
			switch pattern[i] {
			case '*', '?', '{':
				endRun()
				return
			case '+':
				run = append(run, b)
				endRun()
				return
			}
		}
		run = append(run, b)
	}

	i := 0
	for i < len(pattern) {
		switch c := pattern[i]; c {
		case '\\':
			b, literal, size := decodeEscape(pattern[i:])
			i += size
			if !literal || depth > 0 {
				endRun()
				continue
			}
			appendLiteral(b, i)
		case '(':
			depth++
			endRun()
			i++
		case ')':
			depth--
			endRun()
			i++
		case '[':
			endRun()
			i = skipClass(pattern, i)
		case '{':
			endRun()
			i = skipBraces(pattern, i)
		case '|':
			if depth == 0 {
				endBranch()
			} else {
				endRun()
			}
			i++
		case '.', '*', '+', '?':
			endRun()
			i++
		default:
			i++
			if depth > 0 {
				endRun()
				continue
			}
			appendLiteral(c, i)
		}
	}
	endBranch()

	for _, b := range branches {
		if len(b) < minLen {
			return nil, false
		}
	}
	return branches, true
}

// decodeEscape decodes the escape sequence at the start of s (which begins
// with the backslash). It returns the denoted byte when the escape stands for
// exactly one literal byte, literal=false for class-style escapes, and the
// total length of the sequence. The pattern is known valid, so malformed
// escapes cannot occur.
func decodeEscape(s string) (b byte, literal bool, size int) {
	if len(s) < 2 {
		return 0, false, len(s)
	}
	switch c := s[1]; c {
	case '\\', '^', '$', '.', '(', ')', '[', ']', '{', '}', '|':
		return c, true, 2
	case 't':
		return '\t', true, 2
	case 'r':
		return '\r', true, 2
	case 'n':
		return '\n', true, 2
	case 'v':
		return '\v', true, 2
	case 'f':
		return '\f', true, 2
	case 'x':
		if len(s) < 4 {
			return 0, false, len(s)
		}
		return byte(hexValue(s[2])<<4 | hexValue(s[3])), true, 4
	default:
		// Class-style escapes (\d, \w, ...) denote more than one byte.
		return 0, false, 2
	}
}

// hexValue returns the value of a known-valid hex digit.
func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// skipClass advances past a character class; i points at the opening
// bracket. Mirrors the parser: the class ends at the first ']' after the
// optional leading negation.
func skipClass(pattern string, i int) int {
	i++ // '['
	if i < len(pattern) && pattern[i] == '^' {
		i++
	}
	for i < len(pattern) && pattern[i] != ']' {
		if pattern[i] == '\\' {
			i++
		}
		i++
	}
	return i + 1
}

// skipBraces advances past a {...} quantifier body; i points at the opening
// brace.
func skipBraces(pattern string, i int) int {
	for i < len(pattern) && pattern[i] != '}' {
		i++
	}
	return i + 1
}
