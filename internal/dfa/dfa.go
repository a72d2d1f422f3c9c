// Package dfa holds the deterministic automaton produced by subset
// construction. A DFA is immutable once built and safe for concurrent use.
package dfa

import (
	"fmt"
	"slices"
)

// Start is the index of the initial state.
const Start = 0

// Edge is a transition on Char from state From to state To.
type Edge struct {
	From int
	Char rune
	To   int
}

type state struct {
	accept bool
	trans  map[rune]int
}

type DFA struct {
	states []state
}

// Build allocates one state per accept flag and applies edges. It fails
// if an edge leaves the state range or a state gets two edges on the
// same character.
func Build(accept []bool, edges []Edge) (*DFA, error) {
	if len(accept) == 0 {
		return nil, fmt.Errorf("dfa: no states")
	}
	states := make([]state, len(accept))
	for i, a := range accept {
		states[i] = state{accept: a, trans: map[rune]int{}}
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= len(states) || e.To < 0 || e.To >= len(states) {
			return nil, fmt.Errorf("dfa: edge %d -%q-> %d outside %d states", e.From, e.Char, e.To, len(states))
		}
		if prev, dup := states[e.From].trans[e.Char]; dup && prev != e.To {
			return nil, fmt.Errorf("dfa: state %d has two transitions on %q", e.From, e.Char)
		}
		states[e.From].trans[e.Char] = e.To
	}
	return &DFA{states: states}, nil
}

func (d *DFA) Len() int { return len(d.states) }

func (d *DFA) Accepting(i int) bool { return d.states[i].accept }

// Next returns the successor of state i on c, or false if there is none.
func (d *DFA) Next(i int, c rune) (int, bool) {
	to, ok := d.states[i].trans[c]
	return to, ok
}

// Transitions lists the edges leaving state i in character order.
func (d *DFA) Transitions(i int) []Edge {
	out := make([]Edge, 0, len(d.states[i].trans))
	for c, to := range d.states[i].trans {
		out = append(out, Edge{From: i, Char: c, To: to})
	}
	slices.SortFunc(out, func(a, b Edge) int { return int(a.Char) - int(b.Char) })
	return out
}

// Alphabet returns every character with at least one transition, sorted.
func (d *DFA) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, s := range d.states {
		for c := range s.trans {
			seen[c] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Accepts runs input from Start and reports whether it ends in an
// accepting state. A missing transition rejects immediately.
func (d *DFA) Accepts(input string) bool {
	cur := Start
	for _, c := range input {
		next, ok := d.Next(cur, c)
		if !ok {
			return false
		}
		cur = next
	}
	return d.Accepting(cur)
}
