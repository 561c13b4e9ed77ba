// Package diagram renders counterexample lassos as Mermaid diagrams.
package diagram

import (
	"fmt"
	"io"
)

// WriteMermaidLasso writes a Mermaid stateDiagram-v2 representation of
// a counterexample lasso (prefix followed by a repeating cycle) to w.
// States are rendered via name(s), which must assign every distinct
// state a stable, diagram-safe label; it is typically fmt.Sprintf
// passed to a closure, or a pre-computed map lookup.
func WriteMermaidLasso[S any](prefix, cycle []S, name func(S) string, w io.Writer) error {
	if len(cycle) == 0 {
		return fmt.Errorf("diagram: WriteMermaidLasso: cycle must be non-empty")
	}

	fmt.Fprintln(w, "stateDiagram-v2")
	if len(prefix) > 0 {
		fmt.Fprintf(w, "  [*] --> %s\n", name(prefix[0]))
	} else {
		fmt.Fprintf(w, "  [*] --> %s\n", name(cycle[0]))
	}

	seen := make(map[string]bool)
	edge := func(from, to string) {
		key := from + "->" + to
		if seen[key] {
			return
		}
		seen[key] = true
		fmt.Fprintf(w, "  %s --> %s\n", from, to)
	}

	all := append(append([]S{}, prefix...), cycle...)
	for i := 0; i+1 < len(all); i++ {
		edge(name(all[i]), name(all[i+1]))
	}
	// Close the loop: the last cycle element returns to the cycle's
	// first element, making the repetition explicit in the diagram.
	edge(name(cycle[len(cycle)-1]), name(cycle[0]))

	return nil
}
