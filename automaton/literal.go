// Package automaton builds a Generalized Büchi Automaton from a
// normalized LTL formula via tableau expansion, and degeneralizes it
// into an ordinary Büchi Automaton.
package automaton

import (
	"sort"
	"strings"

	"github.com/rfielding/ltlcheck/propid"
)

// Literal is a single atomic-proposition constraint on the symbol read
// when leaving an automaton state: the proposition must be present
// (Value true) or absent (Value false) from the Kripke labelling.
type Literal struct {
	PropID propid.ID
	Value  bool
}

// Guard is a conjunction of Literal constraints: a partial valuation
// that a Kripke state's labelling must extend.
type Guard []Literal

// Satisfies reports whether a concrete set of true propositions
// satisfies every literal in the guard. Propositions the guard does
// not mention are unconstrained.
func (g Guard) Satisfies(labels map[propid.ID]bool) bool {
	for _, lit := range g {
		if labels[lit.PropID] != lit.Value {
			return false
		}
	}
	return true
}

func (g Guard) key() string {
	parts := make([]string, len(g))
	for i, lit := range g {
		sign := "+"
		if !lit.Value {
			sign = "-"
		}
		parts[i] = sign + lit.PropID.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
