package nfa

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMalformed reports an arena that no sequence of builder calls can
// produce. It indicates a bug in whoever edited the arena.
var ErrMalformed = errors.New("malformed automaton")

// stateSet is a sorted, duplicate-free set of state indices.
type stateSet []int

func newStateSet(ids []int) stateSet {
	s := slices.Clone(ids)
	slices.Sort(s)
	return slices.Compact(s)
}

func (s stateSet) contains(i int) bool {
	_, ok := slices.BinarySearch(s, i)
	return ok
}

func (s stateSet) key() string { return fmt.Sprint([]int(s)) }

// validate checks every edge points into the arena.
func (n *NFA) validate() error {
	size := len(n.states)
	inRange := func(r int) bool { return r >= 0 && r < size }
	for i, st := range n.states {
		switch st.Kind {
		case Literal:
			if !inRange(st.Out[0]) {
				return fmt.Errorf("%w: literal state %d has no successor", ErrMalformed, i)
			}
		case Epsilon:
			for _, r := range st.Out {
				if r != NoRef && !inRange(r) {
					return fmt.Errorf("%w: state %d references %d outside arena of %d", ErrMalformed, i, r, size)
				}
			}
		case Undefined:
		default:
			return fmt.Errorf("%w: state %d has %v rule", ErrMalformed, i, st.Kind)
		}
	}
	return nil
}

func (n *NFA) epsilonOut(i int) []int {
	st := n.states[i]
	if st.Kind != Epsilon {
		return nil
	}
	out := make([]int, 0, 2)
	for _, r := range st.Out {
		if r != NoRef {
			out = append(out, r)
		}
	}
	return out
}

// closures computes the epsilon closure of every state.
//
// The walk is an iterative Tarjan traversal over epsilon edges. A state is
// finalized only after everything it reaches is finalized; states met
// again while still on the path form an epsilon cycle and are finalized
// together with the same closure. Star over a nullable body like (a?)*
// produces such cycles.
func (n *NFA) closures() ([]stateSet, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}

	size := len(n.states)
	closure := make([]stateSet, size)
	order := make([]int, size) // 0 = unvisited
	low := make([]int, size)
	onPath := make([]bool, size)
	var pending []int
	counter := 0

	type frame struct {
		state int
		edges []int
		next  int
	}

	visit := func(i int) frame {
		counter++
		order[i], low[i] = counter, counter
		onPath[i] = true
		pending = append(pending, i)
		return frame{state: i, edges: n.epsilonOut(i)}
	}

	for root := range n.states {
		if order[root] != 0 {
			continue
		}
		stack := []frame{visit(root)}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.edges) {
				to := top.edges[top.next]
				top.next++
				switch {
				case order[to] == 0:
					stack = append(stack, visit(to))
				case onPath[to]:
					low[top.state] = min(low[top.state], order[to])
				}
				continue
			}

			i := top.state
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1].state
				low[parent] = min(low[parent], low[i])
			}
			if low[i] != order[i] {
				continue
			}

			var members []int
			for {
				last := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				onPath[last] = false
				members = append(members, last)
				if last == i {
					break
				}
			}
			ids := slices.Clone(members)
			for _, m := range members {
				for _, to := range n.epsilonOut(m) {
					ids = append(ids, closure[to]...)
				}
			}
			set := newStateSet(ids)
			for _, m := range members {
				closure[m] = set
			}
		}
	}
	return closure, nil
}
