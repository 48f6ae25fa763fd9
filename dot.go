package automata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDot writes a Graphviz DOT representation of a to w. Composite states
// are drawn with their labels joined by commas, final states as double circles.
func (a *Automata) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph Automata {")
	fmt.Fprintln(bw, "  rankdir=LR;")
	fmt.Fprintln(bw, "  node [shape=circle];")
	fmt.Fprintln(bw, "  start [shape=point];")

	for _, s := range a.states {
		name := nodeName(s)
		if s.final {
			fmt.Fprintf(bw, "  %q [shape=doublecircle];\n", name)
		} else {
			fmt.Fprintf(bw, "  %q;\n", name)
		}
		if s.initial {
			fmt.Fprintf(bw, "  start -> %q;\n", name)
		}
	}

	for _, s := range a.states {
		for _, symbol := range s.Inputs().Sorted() {
			for _, label := range s.transitions[symbol].Sorted() {
				to := label
				if dest, err := a.State(label); err == nil {
					to = nodeName(dest)
				}
				fmt.Fprintf(bw, "  %q -> %q [label=%q];\n", nodeName(s), to, string(symbol))
			}
		}
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// Dot returns the DOT representation of a.
func (a *Automata) Dot() string {
	var sb strings.Builder
	_ = a.WriteDot(&sb)
	return sb.String()
}

func nodeName(s *State) string {
	return strings.Join(s.Labels(), ",")
}
