package nfa

import (
	"bufio"
	"fmt"
	"io"
	"slices"
)

// WriteDOT prints the Graphviz form of the states reachable from f, in
// arena order. The end of f is drawn as the accepting state.
func WriteDOT(w io.Writer, n *NFA, f Fragment) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	if !f.IsEmpty() {
		for _, i := range n.reachable(f.Start) {
			shape := "circle"
			if i == f.End {
				shape = "doublecircle"
			}
			fmt.Fprintf(bw, "    n%d [shape=%s];\n", i, shape)
			st := n.states[i]
			switch st.Kind {
			case Literal:
				fmt.Fprintf(bw, "    n%d -> n%d [label=%q];\n", i, st.Out[0], string(st.Char))
			case Epsilon:
				for _, to := range n.epsilonOut(i) {
					fmt.Fprintf(bw, "    n%d -> n%d [label=\"ε\"];\n", i, to)
				}
			}
		}
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", f.Start)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// reachable returns the sorted indices reachable from start over any edge.
func (n *NFA) reachable(start int) []int {
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		next := n.epsilonOut(i)
		if st := n.states[i]; st.Kind == Literal {
			next = append(next, st.Out[0])
		}
		for _, to := range next {
			if to >= 0 && to < len(n.states) && !seen[to] {
				seen[to] = true
				stack = append(stack, to)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}
