package ltl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAtomicAndBoolLit(t *testing.T) {
	p := newBoolProp("p")
	ctx := NewStateContext(w("p"))

	res, err := Step(Atom(p), ctx)
	require.NoError(t, err)
	assert.True(t, res.HoldsNow)
	assert.True(t, Equal(res.Next, True()))

	res, err = Step(True(), ctx)
	require.NoError(t, err)
	assert.True(t, res.HoldsNow)

	res, err = Step(False(), ctx)
	require.NoError(t, err)
	assert.False(t, res.HoldsNow)
}

func TestStepNextDefersWithoutEvaluatingInner(t *testing.T) {
	p := newBoolProp("p")
	// A context whose state lookup always fails: if Step(Next(...)) tried
	// to evaluate p now, it would return an error. It must not.
	failingCtx := NewStateContext(nil) // a nil state is not a map[string]bool, so boolProp.Evaluate reports a type mismatch

	res, err := Step(Next(Atom(p)), failingCtx)
	require.NoError(t, err)
	assert.True(t, res.HoldsNow, "next always holds now regardless of its argument")
	assert.True(t, Equal(res.Next, Atom(p)), "the obligation for next position is the bare inner formula, untouched")
}

func TestStepAndOr(t *testing.T) {
	p, q := newBoolProp("p"), newBoolProp("q")
	ctx := NewStateContext(w("p"))

	res, err := Step(And(Atom(p), Atom(q)), ctx)
	require.NoError(t, err)
	assert.False(t, res.HoldsNow)

	res, err = Step(Or(Atom(p), Atom(q)), ctx)
	require.NoError(t, err)
	assert.True(t, res.HoldsNow)
}

func TestStepEventuallyHoldsNowShortCircuits(t *testing.T) {
	p := newBoolProp("p")
	ctx := NewStateContext(w("p"))

	res, err := Step(Eventually(Atom(p)), ctx)
	require.NoError(t, err)
	assert.True(t, res.HoldsNow)
	assert.True(t, Equal(res.Next, True()))
}

func TestStepEventuallyDefersWhenNotHoldingNow(t *testing.T) {
	p := newBoolProp("p")
	ctx := NewStateContext(w())

	res, err := Step(Eventually(Atom(p)), ctx)
	require.NoError(t, err)
	assert.False(t, res.HoldsNow)
	assert.True(t, Equal(res.Next, Eventually(Atom(p))))
}

func TestStepGloballyFailsFastWhenViolatedNow(t *testing.T) {
	p := newBoolProp("p")
	ctx := NewStateContext(w())

	res, err := Step(Globally(Atom(p)), ctx)
	require.NoError(t, err)
	assert.False(t, res.HoldsNow)
	assert.True(t, Equal(res.Next, False()))
}

func TestStepGloballyCarriesObligationForward(t *testing.T) {
	p := newBoolProp("p")
	ctx := NewStateContext(w("p"))

	res, err := Step(Globally(Atom(p)), ctx)
	require.NoError(t, err)
	assert.True(t, res.HoldsNow)
	assert.True(t, Equal(res.Next, Globally(Atom(p))))
}

func TestStepUntilExpandsToFixpointForm(t *testing.T) {
	p, q := newBoolProp("p"), newBoolProp("q")
	ctx := NewStateContext(w("p"))

	res, err := Step(Until(Atom(p), Atom(q)), ctx)
	require.NoError(t, err)
	assert.True(t, res.HoldsNow, "p holds now, so the p ∧ X(p U q) disjunct holds at this step; q is deferred")
}

func TestStepPropagatesPropositionError(t *testing.T) {
	p := newBoolProp("p")
	badCtx := NewStateContext("not-a-map")
	_, err := Step(Atom(p), badCtx)
	assert.Error(t, err)
}
