// Package render pretty-prints NFAs and DFAs as Graphviz DOT source,
// in the spirit of Toasa-regexp's NFA.DumpDOT and DanielRasho's
// PrintNFA/PrintDFA, minus the PNG rasterization step those go on to
// shell out for.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lexgen-project/lexgen/internal/automata"
)

// DFADot renders dfa as DOT source: the start state drawn as a box,
// accepting states as double circles labeled with the token they win.
func DFADot(dfa *automata.DFA) string {
	var b strings.Builder
	b.WriteString("digraph DFA {\n")
	b.WriteString(fmt.Sprintf("    q%d [shape=box];\n", dfa.Start()))

	for _, id := range dfa.States() {
		if lbl, ok := dfa.Label(id); ok {
			b.WriteString(fmt.Sprintf("    q%d [shape=doublecircle, label=\"q%d\\n%s\"];\n", id, id, lbl.TokenName))
		}
	}
	for _, id := range dfa.States() {
		trans := dfa.Transitions(id)
		syms := make([]byte, 0, len(trans))
		for sym := range trans {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
		for _, sym := range syms {
			b.WriteString(fmt.Sprintf("    q%d -> q%d [label=%q];\n", id, trans[sym], edgeLabel(sym)))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// NFADot renders n as DOT source: the start state drawn as a box,
// labeled accept states (present once NFAs have been combined) drawn
// as double circles, and epsilon transitions labeled "ε".
func NFADot(n *automata.NFA) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString(fmt.Sprintf("    q%d [shape=box];\n", n.Start))

	for id, lbl := range n.AcceptLabels {
		b.WriteString(fmt.Sprintf("    q%d [shape=doublecircle, label=\"q%d\\n%s\"];\n", id, id, lbl.TokenName))
	}

	ids := make([]int, 0, len(n.States))
	for id := range n.States {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		st := n.States[id]
		syms := make([]byte, 0, len(st.Transitions))
		for sym := range st.Transitions {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
		for _, sym := range syms {
			targets := make([]int, 0, len(st.Transitions[sym]))
			for t := range st.Transitions[sym] {
				targets = append(targets, t)
			}
			sort.Ints(targets)
			for _, t := range targets {
				b.WriteString(fmt.Sprintf("    q%d -> q%d [label=%q];\n", id, t, edgeLabel(sym)))
			}
		}

		epsTargets := make([]int, 0, len(st.Epsilon))
		for t := range st.Epsilon {
			epsTargets = append(epsTargets, t)
		}
		sort.Ints(epsTargets)
		for _, t := range epsTargets {
			b.WriteString(fmt.Sprintf("    q%d -> q%d [label=\"ε\"];\n", id, t))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func edgeLabel(sym byte) string {
	return string(rune(sym))
}
