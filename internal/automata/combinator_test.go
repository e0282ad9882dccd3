package automata

import "testing"

func buildFragment(t *testing.T, postfix string) *NFA {
	t.Helper()
	n, err := BuildNFA(postfix)
	if err != nil {
		t.Fatalf("BuildNFA(%q): unexpected error: %v", postfix, err)
	}
	return n
}

func TestCombinePreservesDistinctAcceptStates(t *testing.T) {
	ifFrag := buildFragment(t, "if")
	idFrag := buildFragment(t, "ab|c.d.*") // ((a|b)cd)*, stands in for an identifier-ish pattern

	combined := Combine([]*NFA{ifFrag, idFrag}, []string{"IF", "IDENTIFIER"})

	if len(combined.AcceptLabels) != 2 {
		t.Fatalf("expected 2 accept labels, got %d", len(combined.AcceptLabels))
	}

	seen := map[string]int{}
	for _, lbl := range combined.AcceptLabels {
		seen[lbl.TokenName] = lbl.Priority
	}
	if seen["IF"] != 0 {
		t.Errorf("IF priority = %d, want 0", seen["IF"])
	}
	if seen["IDENTIFIER"] != 1 {
		t.Errorf("IDENTIFIER priority = %d, want 1", seen["IDENTIFIER"])
	}
}

func TestCombineDoesNotMutateOriginalFragments(t *testing.T) {
	frag := buildFragment(t, "a")
	originalStates := len(frag.States)

	_ = Combine([]*NFA{frag}, []string{"A"})

	if len(frag.States) != originalStates {
		t.Errorf("Combine mutated its input fragment: had %d states, now %d", originalStates, len(frag.States))
	}
}
