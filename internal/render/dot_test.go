package render

import (
	"strings"
	"testing"

	"github.com/lexgen-project/lexgen/internal/automata"
)

func TestDFADotContainsStartAndAcceptingStates(t *testing.T) {
	n, err := automata.BuildNFA("ab.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	combined := automata.Combine([]*automata.NFA{n}, []string{"AB"})
	dfa := automata.Determinize(combined)

	dot := DFADot(dfa)
	if !strings.HasPrefix(dot, "digraph DFA {") {
		t.Errorf("dot output doesn't start with digraph header: %q", dot)
	}
	if !strings.Contains(dot, "shape=box") {
		t.Error("expected start state rendered as a box")
	}
	if !strings.Contains(dot, "AB") {
		t.Error("expected accepting state labeled with its token name")
	}
}

func TestNFADotContainsEpsilonEdges(t *testing.T) {
	n, err := automata.BuildNFA("a*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dot := NFADot(n)
	if !strings.Contains(dot, "ε") {
		t.Error("expected at least one epsilon edge in a* fragment")
	}
}
