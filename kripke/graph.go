package kripke

import "github.com/rfielding/ltlcheck/propid"

// Graph is an explicit, in-memory Kripke structure builder over a
// comparable state type S. S itself serves as the map key directly,
// since S is already required to be comparable.
type Graph[S comparable] struct {
	states map[S]struct{}
	labels map[S]map[propid.ID]bool
	succ   map[S][]S
	init   []S
	order  []S // insertion order, for deterministic AllStates/diagram output
}

// NewGraph constructs an empty Graph.
func NewGraph[S comparable]() *Graph[S] {
	return &Graph[S]{
		states: make(map[S]struct{}),
		labels: make(map[S]map[propid.ID]bool),
		succ:   make(map[S][]S),
	}
}

func (g *Graph[S]) ensure(s S) {
	if _, ok := g.states[s]; ok {
		return
	}
	g.states[s] = struct{}{}
	g.order = append(g.order, s)
}

// AddState registers s with the given labelling (true propositions).
// Calling AddState again for the same state merges labels rather than
// erroring, so callers may label incrementally.
func (g *Graph[S]) AddState(s S, labelled ...propid.ID) {
	g.ensure(s)
	set, ok := g.labels[s]
	if !ok {
		set = make(map[propid.ID]bool)
		g.labels[s] = set
	}
	for _, id := range labelled {
		set[id] = true
	}
}

// AddEdge adds a transition from -> to, auto-creating either endpoint.
func (g *Graph[S]) AddEdge(from, to S) {
	g.ensure(from)
	g.ensure(to)
	g.succ[from] = append(g.succ[from], to)
}

// SetInitial marks s as an initial state, auto-creating it.
func (g *Graph[S]) SetInitial(s S) {
	g.ensure(s)
	g.init = append(g.init, s)
}

// InitialStates implements Structure.
func (g *Graph[S]) InitialStates() []S {
	out := make([]S, len(g.init))
	copy(out, g.init)
	return out
}

// AllStates implements Structure, in insertion order.
func (g *Graph[S]) AllStates() []S {
	out := make([]S, len(g.order))
	copy(out, g.order)
	return out
}

// Successors implements Structure. A state with no registered edges is
// treated as self-looping, the permissive choice for dead-end states.
func (g *Graph[S]) Successors(s S) []S {
	succ := g.succ[s]
	if len(succ) == 0 {
		return []S{s}
	}
	out := make([]S, len(succ))
	copy(out, succ)
	return out
}

// Labelling implements Structure.
func (g *Graph[S]) Labelling(s S) map[propid.ID]bool {
	return g.labels[s]
}
