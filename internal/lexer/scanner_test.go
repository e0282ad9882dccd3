package lexer

import (
	"testing"

	"github.com/lexgen-project/lexgen/internal/automata"
)

func dfaFromPatterns(t *testing.T, names, postfixes []string) *automata.DFA {
	t.Helper()
	frags := make([]*automata.NFA, len(postfixes))
	for i, p := range postfixes {
		n, err := automata.BuildNFA(p)
		if err != nil {
			t.Fatalf("BuildNFA(%q): %v", p, err)
		}
		frags[i] = n
	}
	return automata.Determinize(automata.Combine(frags, names))
}

func TestScanKeywordBeatsIdentifierOnTie(t *testing.T) {
	d := dfaFromPatterns(t,
		[]string{"IF", "IDENTIFIER"},
		[]string{"if", "if|if|*."},
	)

	tokens, errs := Scan(d, "if")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 1 || tokens[0].Type != "IF" || tokens[0].Lexeme != "if" {
		t.Fatalf("tokens = %+v, want one IF token", tokens)
	}
}

func TestScanLongestMatch(t *testing.T) {
	d := dfaFromPatterns(t,
		[]string{"A", "AB"},
		[]string{"a", "ab."},
	)

	tokens, errs := Scan(d, "ab")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 1 || tokens[0].Type != "AB" || tokens[0].Lexeme != "ab" {
		t.Fatalf("tokens = %+v, want one AB token covering \"ab\"", tokens)
	}
}

func TestScanStarNeverEmitsEmptyMatch(t *testing.T) {
	d := dfaFromPatterns(t, []string{"AS"}, []string{"a*"})

	tokens, errs := Scan(d, "aaab")
	if len(tokens) != 1 || tokens[0].Lexeme != "aaa" {
		t.Fatalf("tokens = %+v, want one token \"aaa\"", tokens)
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one lexical error for 'b'", errs)
	}
	lexErr, ok := errs[0].(*LexicalError)
	if !ok || lexErr.Byte != 'b' {
		t.Fatalf("errs[0] = %#v, want LexicalError on byte 'b'", errs[0])
	}
}

func TestScanUnionWithGrouping(t *testing.T) {
	// (a|b)c matches "ac" and "bc"
	d := dfaFromPatterns(t, []string{"X"}, []string{"ab|c."})

	tokens, errs := Scan(d, "ac bc")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 2 || tokens[0].Lexeme != "ac" || tokens[1].Lexeme != "bc" {
		t.Fatalf("tokens = %+v, want [ac bc]", tokens)
	}
}

func TestScanSkipsWhitespaceAndTracksPosition(t *testing.T) {
	d := dfaFromPatterns(t, []string{"A"}, []string{"a"})

	tokens, errs := Scan(d, "a a\na")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 3 {
		t.Fatalf("tokens = %+v, want 3 tokens", tokens)
	}
	if tokens[2].Line != 2 || tokens[2].Column != 1 {
		t.Fatalf("tokens[2] = %+v, want line 2 column 1", tokens[2])
	}
}

func TestScanReportsErrorAndRecovers(t *testing.T) {
	d := dfaFromPatterns(t, []string{"A"}, []string{"a"})

	tokens, errs := Scan(d, "a#a")
	if len(tokens) != 2 {
		t.Fatalf("tokens = %+v, want 2 tokens around the error", tokens)
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly 1 lexical error", errs)
	}
}

func TestScanPriorityTieBreakUsesEarliestDeclared(t *testing.T) {
	// Two patterns that both match "x" exactly; the first declared
	// (lower priority index) must win, per DESIGN.md's Open Question 2.
	d := dfaFromPatterns(t, []string{"FIRST", "SECOND"}, []string{"x", "x"})

	tokens, errs := Scan(d, "x")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 1 || tokens[0].Type != "FIRST" {
		t.Fatalf("tokens = %+v, want FIRST to win the tie", tokens)
	}
}
