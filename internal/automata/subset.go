package automata

import (
	"sort"
	"strconv"
	"strings"
)

// epsilonClosure returns every state reachable from seeds by zero or
// more epsilon transitions, seeds included.
func epsilonClosure(n *NFA, seeds map[int]bool) map[int]bool {
	closure := make(map[int]bool, len(seeds))
	stack := make([]int, 0, len(seeds))
	for s := range seeds {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := range n.States[cur].Epsilon {
			if !closure[t] {
				closure[t] = true
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// move returns every state reachable from set by consuming sym.
func move(n *NFA, set map[int]bool, sym byte) map[int]bool {
	out := make(map[int]bool)
	for s := range set {
		for t := range n.States[s].Transitions[sym] {
			out[t] = true
		}
	}
	return out
}

// subsetKey canonicalizes a set of NFA state ids into a comparable
// string, so the worklist can recognize when two subsets coincide.
func subsetKey(set map[int]bool) string {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// alphabetOf collects every byte any state in n transitions on.
func alphabetOf(n *NFA) map[byte]bool {
	alphabet := make(map[byte]bool)
	for _, st := range n.States {
		for sym := range st.Transitions {
			alphabet[sym] = true
		}
	}
	return alphabet
}

// labelSubset returns the label of the lowest-priority accepting NFA
// state in set, and whether set contains any accepting state at all.
// Lower Priority wins ties — see DESIGN.md's Open Question 2 for why
// this is the corrected behavior, not the source's "highest priority
// number wins" rule.
func labelSubset(n *NFA, set map[int]bool) (DFALabel, bool) {
	var best DFALabel
	found := false
	bestPriority := 0
	for id := range set {
		lbl, ok := n.AcceptLabels[id]
		if !ok {
			continue
		}
		if !found || lbl.Priority < bestPriority {
			found = true
			bestPriority = lbl.Priority
			best = DFALabel{TokenName: lbl.TokenName, Priority: lbl.Priority}
		}
	}
	return best, found
}

// Determinize runs subset construction over a combined NFA, producing
// a DFA whose states are dense subset ids starting at 0 for the start
// state's own epsilon-closure.
func Determinize(n *NFA) *DFA {
	alphabet := alphabetOf(n)

	type pending struct {
		id  int
		set map[int]bool
	}

	startSet := epsilonClosure(n, map[int]bool{n.Start: true})
	idOf := map[string]int{subsetKey(startSet): 0}
	var states []*DFAState
	queue := []pending{{id: 0, set: startSet}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		st := &DFAState{ID: p.id, Transitions: make(map[byte]int)}
		if lbl, ok := labelSubset(n, p.set); ok {
			st.Accepting = true
			st.Label = lbl
		}

		for sym := range alphabet {
			target := epsilonClosure(n, move(n, p.set, sym))
			if len(target) == 0 {
				continue
			}
			key := subsetKey(target)
			id, seen := idOf[key]
			if !seen {
				id = len(idOf)
				idOf[key] = id
				queue = append(queue, pending{id: id, set: target})
			}
			st.Transitions[sym] = id
		}

		for len(states) <= p.id {
			states = append(states, nil)
		}
		states[p.id] = st
	}

	return &DFA{states: states, start: 0, alphabet: alphabet}
}
