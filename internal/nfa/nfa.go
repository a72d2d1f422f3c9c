// Package nfa builds Thompson NFAs over an index arena and determinises
// them by subset construction.
package nfa

import "fmt"

// NoRef marks a missing edge or an unset fragment index.
const NoRef = -1

// Kind is the rule carried by a state.
type Kind uint8

const (
	Undefined Kind = iota // never assigned; dangling fragment ends
	Epsilon
	Literal
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Epsilon:
		return "epsilon"
	case Literal:
		return "literal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// State is one arena node. A Literal state moves to Out[0] on Char;
// an Epsilon state moves to any Out that is not NoRef without input.
type State struct {
	Kind Kind
	Char rune
	Out  [2]int
}

func newState() State {
	return State{Kind: Undefined, Out: [2]int{NoRef, NoRef}}
}

// Fragment is a sub-automaton spanning Start to a dangling End.
type Fragment struct {
	Start, End int
}

// Empty matches nothing.
var Empty = Fragment{Start: NoRef, End: NoRef}

func (f Fragment) IsEmpty() bool { return f.Start == NoRef || f.End == NoRef }

// NFA owns the state arena. Indices are stable: states are only ever
// appended, so fragments stay valid while further fragments are built.
type NFA struct {
	states []State
}

func New() *NFA { return &NFA{} }

func (n *NFA) Len() int { return len(n.states) }

func (n *NFA) State(i int) State { return n.states[i] }

func (n *NFA) alloc(count int) int {
	first := len(n.states)
	for i := 0; i < count; i++ {
		n.states = append(n.states, newState())
	}
	return first
}

// setEpsilon rewrites state i into an epsilon state with the given edges.
func (n *NFA) setEpsilon(i, out0, out1 int) {
	n.states[i] = State{Kind: Epsilon, Out: [2]int{out0, out1}}
}
