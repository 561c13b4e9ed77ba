// Package product builds the synchronous product of a Kripke structure
// with a Büchi automaton and decides language emptiness via nested
// depth-first search, extracting a lasso counterexample when the
// product admits an accepting run.
package product

import (
	"context"
	"fmt"

	"github.com/rfielding/ltlcheck/automaton"
	"github.com/rfielding/ltlcheck/kripke"
)

// State is a single product configuration: a Kripke state paired with
// a Büchi automaton state.
type State[S comparable] struct {
	M  S
	BA int
}

// Counterexample is a lasso prefix·cycle^ω projected onto Kripke
// states.
type Counterexample[S comparable] struct {
	Prefix []S
	Cycle  []S
}

// Machine evaluates the product on the fly: it never materializes the
// full product graph, only the states reachable from a valid initial
// configuration.
type Machine[S comparable] struct {
	model kripke.Structure[S]
	ba    *automaton.BA
}

// New builds a product machine over model and ba.
func New[S comparable](model kripke.Structure[S], ba *automaton.BA) *Machine[S] {
	return &Machine[S]{model: model, ba: ba}
}

// valid reports whether s's Kripke labelling satisfies q's automaton
// guard, the single symbol-reading discipline this package applies
// consistently to both initial states and successor generation.
func (m *Machine[S]) valid(st State[S]) bool {
	return m.ba.Guard(st.BA).Satisfies(m.model.Labelling(st.M))
}

// InitialStates returns every valid initial product configuration.
func (m *Machine[S]) InitialStates() []State[S] {
	var out []State[S]
	for _, s0 := range m.model.InitialStates() {
		for _, q0 := range m.ba.Initial {
			cand := State[S]{M: s0, BA: q0}
			if m.valid(cand) {
				out = append(out, cand)
			}
		}
	}
	return out
}

// Successors returns every valid successor of st.
func (m *Machine[S]) Successors(st State[S]) []State[S] {
	var out []State[S]
	for _, sp := range m.model.Successors(st.M) {
		for _, qp := range m.ba.Succ(st.BA) {
			cand := State[S]{M: sp, BA: qp}
			if m.valid(cand) {
				out = append(out, cand)
			}
		}
	}
	return out
}

// Accepting reports whether st's automaton component is a BA accepting
// state.
func (m *Machine[S]) Accepting(st State[S]) bool {
	return m.ba.Accepting[st.BA]
}

// ErrCancelled is wrapped into the search error when ctx is cancelled
// at an outer-DFS frontier pop.
var ErrCancelled = fmt.Errorf("product: search cancelled")

// CheckEmptiness runs nested DFS over m to decide whether m's language
// is empty. A nil, nil result means empty (no accepting lasso exists);
// a non-nil Counterexample means the product admits an accepting run.
func CheckEmptiness[S comparable](ctx context.Context, m *Machine[S]) (*Counterexample[S], error) {
	s := newSearch(m)
	for _, init := range m.InitialStates() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		ce, err := s.outerDFS(ctx, init)
		if err != nil {
			return nil, err
		}
		if ce != nil {
			return ce, nil
		}
	}
	return nil, nil
}
