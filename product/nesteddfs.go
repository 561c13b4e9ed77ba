package product

import (
	"context"
	"fmt"
)

// search holds the state of one emptiness check: the outer-DFS visited
// set (shared across the whole search) and the current outer-DFS
// stack, used to reconstruct a counterexample's prefix.
type search[S comparable] struct {
	m       *Machine[S]
	visited map[State[S]]bool
	stack   []State[S]
}

func newSearch[S comparable](m *Machine[S]) *search[S] {
	return &search[S]{m: m, visited: make(map[State[S]]bool)}
}

// outerDFS explores the product graph reachable from v. On post-order
// visit of an accepting state it launches an inner search for a cycle
// back to that state. Each call is one pop of the conceptual outer-DFS
// frontier, which is where cancellation is checked.
func (s *search[S]) outerDFS(ctx context.Context, v State[S]) (*Counterexample[S], error) {
	if s.visited[v] {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	s.visited[v] = true

	// prefixBefore excludes v itself: v is represented once, at the
	// start of the cycle, not duplicated at the prefix's end too.
	prefixBefore := append([]State[S]{}, s.stack...)
	s.stack = append(s.stack, v)

	for _, w := range s.m.Successors(v) {
		ce, err := s.outerDFS(ctx, w)
		if err != nil {
			return nil, err
		}
		if ce != nil {
			return ce, nil
		}
	}

	if s.m.Accepting(v) {
		if cycle, found := s.innerDFS(v); found {
			return &Counterexample[S]{
				Prefix: projectM(prefixBefore),
				Cycle:  projectM(cycle),
			}, nil
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	return nil, nil
}

// innerDFS searches the product graph reachable from seed for a path
// back to seed, using a visited set scoped to this single search (a
// fresh search per accepting state, not the shared optimization some
// nested-DFS presentations use, traded here for a simpler, more
// obviously correct implementation). On success it returns the path
// starting at seed and ending at the last state before the closing
// edge back to seed.
func (s *search[S]) innerDFS(seed State[S]) ([]State[S], bool) {
	visited := map[State[S]]bool{seed: true}
	path := []State[S]{seed}

	var walk func(v State[S]) bool
	walk = func(v State[S]) bool {
		for _, w := range s.m.Successors(v) {
			if w == seed {
				return true
			}
			if visited[w] {
				continue
			}
			visited[w] = true
			path = append(path, w)
			if walk(w) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	if walk(seed) {
		return path, true
	}
	return nil, false
}

func projectM[S comparable](states []State[S]) []S {
	out := make([]S, len(states))
	for i, st := range states {
		out[i] = st.M
	}
	return out
}
