package automata

import (
	"github.com/pkg/errors"

	"github.com/lexgen-project/lexgen/internal/regex"
)

// ErrMalformedRegex is regex.ErrMalformedRegex itself, so failures
// surfaced while running Thompson construction over a postfix stream
// (an operator left without enough operands, or operands left over)
// match the same sentinel as the parser's own errors.
var ErrMalformedRegex = regex.ErrMalformedRegex

const (
	opUnion  byte = '|'
	opConcat byte = '.'
	opStar   byte = '*'
)

// BuildNFA runs Thompson's construction over a postfix operator stream
// produced by internal/regex.ToPostfix: a stack of fragments, with
// union/concat/star popping one or two fragments and pushing the
// combined result, and any other byte pushing a two-state literal
// fragment.
func BuildNFA(postfix string) (*NFA, error) {
	if len(postfix) == 0 {
		return nil, errors.Wrap(ErrMalformedRegex, "empty postfix stream")
	}

	var stack []*NFA

	pop := func() (*NFA, error) {
		if len(stack) == 0 {
			return nil, errors.Wrap(ErrMalformedRegex, "operator with too few operands")
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	for i := 0; i < len(postfix); i++ {
		switch c := postfix[i]; c {
		case opStar:
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, star(a))
		case opUnion:
			b, err := pop()
			if err != nil {
				return nil, err
			}
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, union(a, b))
		case opConcat:
			b, err := pop()
			if err != nil {
				return nil, err
			}
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, concat(a, b))
		default:
			stack = append(stack, symbol(c))
		}
	}

	if len(stack) != 1 {
		return nil, errors.Wrapf(ErrMalformedRegex, "postfix stream left %d fragments on the stack", len(stack))
	}
	return stack[0], nil
}

// symbol builds the primitive two-state fragment for a single literal
// byte: start --c--> accept.
func symbol(c byte) *NFA {
	n := New()
	n.addTransition(n.Start, c, n.Accept)
	return n
}

// star builds Thompson's Kleene-closure fragment around a: a fresh
// start/accept pair bypassing a entirely (the zero-repetition path) and
// looping a's accept back to a's start (the repeat path).
func star(a *NFA) *NFA {
	n := New()
	aStart, aAccept := n.merge(a)
	n.addEpsilon(n.Start, aStart)
	n.addEpsilon(n.Start, n.Accept)
	n.addEpsilon(aAccept, aStart)
	n.addEpsilon(aAccept, n.Accept)
	return n
}

// union builds Thompson's alternation fragment: a fresh start
// epsilon-branching into both a and b, both converging on a fresh
// accept.
func union(a, b *NFA) *NFA {
	n := New()
	aStart, aAccept := n.merge(a)
	bStart, bAccept := n.merge(b)
	n.addEpsilon(n.Start, aStart)
	n.addEpsilon(n.Start, bStart)
	n.addEpsilon(aAccept, n.Accept)
	n.addEpsilon(bAccept, n.Accept)
	return n
}

// concat builds Thompson's sequencing fragment: a's accept epsilons
// straight into b's start, and the result's start/accept are simply a's
// start and b's accept — no new states needed.
func concat(a, b *NFA) *NFA {
	n := &NFA{
		States:       make(map[int]*State),
		AcceptLabels: make(map[int]AcceptLabel),
	}
	aStart, aAccept := n.merge(a)
	bStart, bAccept := n.merge(b)
	n.addEpsilon(aAccept, bStart)
	n.Start = aStart
	n.Accept = bAccept
	return n
}
