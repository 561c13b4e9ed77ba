package ltl

import "github.com/rfielding/ltlcheck/propid"

// boolProp is a proposition whose truth value is looked up from a
// map[string]bool carried as the context's state, keyed by the
// proposition's own name. It is the test fixture used throughout this
// package as simple named atoms.
type boolProp struct {
	id   propid.ID
	name string
}

func newBoolProp(name string) *boolProp {
	return &boolProp{id: propid.MustNew(name), name: name}
}

func (p *boolProp) ID() propid.ID { return p.id }
func (p *boolProp) Name() string  { return p.name }

func (p *boolProp) Evaluate(ctx EvaluationContext) (bool, error) {
	v, ok := ctx.State()
	if !ok {
		return false, &EvalError{Kind: StateNotAvailable, PropID: p.id, PropName: p.name}
	}
	set, ok := v.(map[string]bool)
	if !ok {
		return false, &EvalError{Kind: StateTypeMismatch, PropID: p.id, PropName: p.name}
	}
	return set[p.name], nil
}

// worldCtx builds a ContextProvider[map[string]bool] for use with
// ltl.Evaluate/EvaluateLasso: each trace element is a set of proposition
// names true in that world.
func worldCtx(_ int, state map[string]bool) EvaluationContext {
	return NewStateContext(state)
}

func w(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
