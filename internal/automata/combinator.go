package automata

// Combine merges per-token NFAs into a single NFA with one fresh start
// state epsilon-branching into every fragment, while keeping each
// fragment's own accept state as a distinct, individually labeled
// state rather than folding them into one shared accept.
//
// This is the load-bearing difference from classical Thompson union:
// collapsing every fragment's accept into a single shared accept state
// (the way star/union do for a single pattern) would make it impossible
// for subset construction to later tell which token matched. names[i]
// is the token assigned to fragments[i]; its position in the slice is
// also its priority — lower index wins ties during determinization.
func Combine(fragments []*NFA, names []string) *NFA {
	combined := &NFA{
		States:       make(map[int]*State),
		AcceptLabels: make(map[int]AcceptLabel),
	}
	combined.Start = combined.addState()

	for i, frag := range fragments {
		start, accept := combined.merge(frag.Clone())
		combined.addEpsilon(combined.Start, start)
		combined.AcceptLabels[accept] = AcceptLabel{TokenName: names[i], Priority: i}
	}

	return combined
}
