package nfa

import (
	"slices"

	"thompson/internal/dfa"
)

// ToDFA determinises the automaton rooted at f. The arena is not modified.
// An empty fragment yields a single rejecting state.
func (n *NFA) ToDFA(f Fragment) (*dfa.DFA, error) {
	if f.IsEmpty() {
		return dfa.Build([]bool{false}, nil)
	}
	closure, err := n.closures()
	if err != nil {
		return nil, err
	}
	sets, edges := n.subsets(closure, f.Start)
	return materialize(sets, edges, f.End)
}

// subsets runs the worklist over state-sets in discovery order. Set i of
// the result is DFA state i.
func (n *NFA) subsets(closure []stateSet, start int) ([]stateSet, []dfa.Edge) {
	sets := []stateSet{closure[start]}
	seen := map[string]int{sets[0].key(): 0}
	var edges []dfa.Edge

	for from := 0; from < len(sets); from++ {
		moves := map[rune][]int{}
		for _, i := range sets[from] {
			st := n.states[i]
			if st.Kind != Literal {
				continue
			}
			moves[st.Char] = append(moves[st.Char], closure[st.Out[0]]...)
		}

		chars := make([]rune, 0, len(moves))
		for c := range moves {
			chars = append(chars, c)
		}
		slices.Sort(chars)

		for _, c := range chars {
			target := newStateSet(moves[c])
			k := target.key()
			to, ok := seen[k]
			if !ok {
				to = len(sets)
				sets = append(sets, target)
				seen[k] = to
			}
			edges = append(edges, dfa.Edge{From: from, Char: c, To: to})
		}
	}
	return sets, edges
}

func materialize(sets []stateSet, edges []dfa.Edge, end int) (*dfa.DFA, error) {
	accept := make([]bool, len(sets))
	for i, s := range sets {
		accept[i] = s.contains(end)
	}
	return dfa.Build(accept, edges)
}
