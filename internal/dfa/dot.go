package dfa

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT prints the Graphviz form of d to w.
func WriteDOT(w io.Writer, d *DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i := range d.states {
		shape := "circle"
		if d.Accepting(i) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", i, shape)
		for _, e := range d.Transitions(i) {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%q];\n", e.From, e.To, string(e.Char))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", Start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
