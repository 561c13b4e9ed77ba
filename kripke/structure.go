// Package kripke provides the Kripke-structure contract the model
// checker consumes and a generic in-memory builder for it, usable with
// any comparable state type.
package kripke

import "github.com/rfielding/ltlcheck/propid"

// Structure is the finite transition system a formula is checked
// against. S is the caller's state type; it must be comparable so
// states can key maps and sets throughout the engine.
//
// Successors must be total (every state has at least one successor,
// or the consumer must be prepared to self-loop dead ends) and
// deterministic per state; Labelling must be deterministic per state.
type Structure[S comparable] interface {
	InitialStates() []S
	AllStates() []S
	Successors(s S) []S
	Labelling(s S) map[propid.ID]bool
}
