// Package generator provides the Generator facade: the one call a
// collaborator (CLI, config loader, code emitter) needs to go from a
// list of named patterns to a compiled DFA and a working scanner,
// without reaching into internal/regex or internal/automata directly.
package generator

import (
	"github.com/pkg/errors"

	"github.com/lexgen-project/lexgen/internal/automata"
	"github.com/lexgen-project/lexgen/internal/lexer"
	"github.com/lexgen-project/lexgen/internal/regex"
)

// Sentinel error kinds. ErrMalformedRegex is re-exported from
// internal/regex so callers never need to import it directly.
var (
	ErrMalformedRegex = regex.ErrMalformedRegex
	ErrNoPatterns     = errors.New("no patterns: Build called with zero token specs")
	ErrNotBuilt       = errors.New("generator: Build has not succeeded yet")
)

// TokenSpec names one pattern and the token type it produces.
// Declaration order is priority order: earlier specs win ties between
// patterns that match the same input with equal length.
type TokenSpec struct {
	Name    string
	Pattern string
}

// Generator accumulates TokenSpecs and, on Build, compiles them into a
// single combined DFA.
type Generator struct {
	specs []TokenSpec
	nfa   *automata.NFA
	dfa   *automata.DFA
	built bool
}

// New returns an empty Generator.
func New() *Generator {
	return &Generator{}
}

// AddToken appends a token spec. It invalidates any previous Build.
func (g *Generator) AddToken(name, pattern string) {
	g.specs = append(g.specs, TokenSpec{Name: name, Pattern: pattern})
	g.built = false
}

// Build compiles every added token spec into a combined NFA and
// determinizes it. It fails fast on the first malformed pattern,
// naming the offending token.
func (g *Generator) Build() error {
	if len(g.specs) == 0 {
		return errors.WithStack(ErrNoPatterns)
	}

	fragments := make([]*automata.NFA, len(g.specs))
	names := make([]string, len(g.specs))
	for i, spec := range g.specs {
		postfix, err := regex.ToPostfix(spec.Pattern)
		if err != nil {
			return errors.Wrapf(err, "token %q: pattern %q", spec.Name, spec.Pattern)
		}
		frag, err := automata.BuildNFA(postfix)
		if err != nil {
			return errors.Wrapf(err, "token %q: pattern %q", spec.Name, spec.Pattern)
		}
		fragments[i] = frag
		names[i] = spec.Name
	}

	combined := automata.Combine(fragments, names)
	g.nfa = combined
	g.dfa = automata.Determinize(combined)
	g.built = true
	return nil
}

// NFA returns the combined NFA from the last successful Build, and
// whether Build has succeeded at all.
func (g *Generator) NFA() (*automata.NFA, bool) {
	return g.nfa, g.built
}

// DFA returns the determinized DFA from the last successful Build, and
// whether Build has succeeded at all.
func (g *Generator) DFA() (*automata.DFA, bool) {
	return g.dfa, g.built
}

// Accepts reports whether input scans to completion with no lexical
// errors. It does not distinguish which tokens matched; use Tokenize
// for that.
func (g *Generator) Accepts(input string) bool {
	if !g.built {
		return false
	}
	_, errs := lexer.Scan(g.dfa, input)
	return len(errs) == 0
}

// Tokenize runs the longest-match scanner over input against the last
// successful Build's DFA.
func (g *Generator) Tokenize(input string) ([]lexer.Token, []error) {
	if !g.built {
		return nil, []error{errors.WithStack(ErrNotBuilt)}
	}
	return lexer.Scan(g.dfa, input)
}
