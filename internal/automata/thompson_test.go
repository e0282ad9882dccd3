package automata

import "testing"

func runOnNFA(t *testing.T, n *NFA, input string) bool {
	t.Helper()
	current := epsilonClosure(n, map[int]bool{n.Start: true})
	for i := 0; i < len(input); i++ {
		current = epsilonClosure(n, move(n, current, input[i]))
		if len(current) == 0 {
			return false
		}
	}
	return accepts(n, current)
}

// accepts reports whether any state in current is the fragment's own
// accept state or carries an accept label (for combined NFAs).
func accepts(n *NFA, current map[int]bool) bool {
	for id := range current {
		if id == n.Accept {
			return true
		}
		if _, ok := n.AcceptLabels[id]; ok {
			return true
		}
	}
	return false
}

func TestBuildNFALiteral(t *testing.T) {
	n, err := BuildNFA("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !runOnNFA(t, n, "a") {
		t.Error("expected NFA to accept \"a\"")
	}
	if runOnNFA(t, n, "b") {
		t.Error("expected NFA to reject \"b\"")
	}
}

func TestBuildNFAConcat(t *testing.T) {
	n, err := BuildNFA("ab.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !runOnNFA(t, n, "ab") {
		t.Error("expected NFA to accept \"ab\"")
	}
	if runOnNFA(t, n, "a") || runOnNFA(t, n, "ba") {
		t.Error("expected NFA to reject \"a\" and \"ba\"")
	}
}

func TestBuildNFAUnion(t *testing.T) {
	n, err := BuildNFA("ab|")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"a", "b"} {
		if !runOnNFA(t, n, s) {
			t.Errorf("expected NFA to accept %q", s)
		}
	}
	if runOnNFA(t, n, "ab") {
		t.Error("expected NFA to reject \"ab\"")
	}
}

func TestBuildNFAStar(t *testing.T) {
	n, err := BuildNFA("a*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"", "a", "aa", "aaaa"} {
		if !runOnNFA(t, n, s) {
			t.Errorf("expected NFA to accept %q", s)
		}
	}
	if runOnNFA(t, n, "b") {
		t.Error("expected NFA to reject \"b\"")
	}
}

func TestBuildNFAMalformed(t *testing.T) {
	cases := []string{"", "|", "ab|c", "*"}
	for _, c := range cases {
		if _, err := BuildNFA(c); err == nil {
			t.Errorf("BuildNFA(%q): expected error, got nil", c)
		}
	}
}

func TestBuildNFAGroupedUnion(t *testing.T) {
	// (a|b).c  ->  postfix "ab|c."
	n, err := BuildNFA("ab|c.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"ac", "bc"} {
		if !runOnNFA(t, n, s) {
			t.Errorf("expected NFA to accept %q", s)
		}
	}
	if runOnNFA(t, n, "c") || runOnNFA(t, n, "a") {
		t.Error("expected NFA to reject \"c\" and \"a\"")
	}
}
