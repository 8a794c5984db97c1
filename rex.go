// Package rex provides a whole-string regular expression engine.
//
// A pattern is compiled once into a finite automaton and reused across many
// matches. Matching is acceptance only: the automaton either accepts the
// entire input byte sequence or it does not. There is no searching, no
// capture extraction and no anchoring syntax; a pattern describes complete
// inputs the way a grammar production would.
//
// Compilation picks the runtime automatically. Patterns whose automaton comes
// out deterministic run on a dense DFA table; the rest run on a subset
// construction NFA whose cost is bounded by input length times state count,
// so pathological patterns like nested quantifiers cannot blow up at match
// time.
//
// Basic usage:
//
//	re, err := rex.Compile(`(lorem|ipsum)+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("loremlorem") // true
//	re.MatchString("loremdolor") // false
//
// The alphabet is raw bytes 0x01..0xFF: patterns operate on bytes, not runes,
// and no pattern matches a NUL byte.
package rex

import (
	"fmt"

	"github.com/coregx/rex/automaton"
	"github.com/coregx/rex/prefilter"
	"github.com/coregx/rex/syntax"
)

// Regex is a compiled pattern.
//
// A Regex is immutable and safe to use concurrently from multiple goroutines
// without synchronization.
type Regex struct {
	automaton automaton.Automaton
	prefilter prefilter.Prefilter
	pattern   string
}

// Compile compiles a pattern with the default configuration.
//
// Errors carry a kind and a fixed message; unwrap to *syntax.Error to
// distinguish malformed patterns from recognised-but-unsupported syntax:
//
//	_, err := rex.Compile(`[a-z]`)
//	var serr *syntax.Error
//	errors.As(err, &serr) // serr.Kind == syntax.Unimplemented
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	scratch, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	var a automaton.Automaton
	if config.ForceNFA {
		a = scratch.FinalizeNFA()
	} else {
		a = scratch.Finalize()
	}
	re := &Regex{automaton: a, pattern: pattern}
	if config.EnablePrefilter {
		re.prefilter = prefilter.FromPattern(pattern, config.MinLiteralLen, config.MaxLiterals)
	}
	return re, nil
}

// MustCompile compiles a pattern and panics if it fails. Useful for patterns
// known to be valid at program start:
//
//	var semver = rex.MustCompile(`\d{1,3}(\.\d{1,3}){2}`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Match is a convenience that compiles pattern and matches input in one call.
// For repeated matching, compile once and reuse the Regex.
func Match(pattern string, input []byte) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(input), nil
}

// Match reports whether the pattern accepts input as a whole string.
func (r *Regex) Match(input []byte) bool {
	if r.prefilter != nil && !r.prefilter.CouldMatch(input) {
		return false
	}
	return r.automaton.Run(input)
}

// MatchString reports whether the pattern accepts s as a whole string.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// String returns the source text the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// CompileError wraps a pattern compilation failure with its pattern.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("rex: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
