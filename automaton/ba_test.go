package automaton

import (
	"testing"

	"github.com/rfielding/ltlcheck/ltl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegeneralizeWithTrivialAcceptanceFamilyAcceptsEverything(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.Atom(p))
	ba := Degeneralize(g)

	require.NotEmpty(t, ba.States)
	for i := range ba.States {
		assert.True(t, ba.Accepting[i], "trivial single-family BA accepts every reachable state")
	}
}

func TestDegeneralizeInitialStatesUseCounterOne(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.Atom(p))
	ba := Degeneralize(g)

	require.Len(t, ba.Initial, 1)
	assert.Equal(t, 1, ba.States[ba.Initial[0]].Counter)
}

func TestDegeneralizeGuardMatchesUnderlyingGBAState(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.Atom(p))
	ba := Degeneralize(g)

	init := ba.Initial[0]
	assert.Equal(t, g.States[ba.States[init].GBAState].Guard, ba.Guard(init))
}

func TestDegeneralizeSuccDegradesToSameCounterWhenNotAccepting(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.Eventually(ltl.Atom(p)))
	ba := Degeneralize(g)

	require.NotEmpty(t, ba.Initial)
	for _, id := range ba.Initial {
		succs := ba.Succ(id)
		assert.NotEmpty(t, succs)
		if !ba.Accepting[id] {
			for _, sid := range succs {
				assert.Equal(t, ba.States[id].Counter, ba.States[sid].Counter)
			}
		}
	}
}

func TestDegeneralizeWithMultipleFamiliesCyclesCounter(t *testing.T) {
	p, q := testProp("p"), testProp("q")
	// Two independent eventualities: two acceptance families.
	phi := ltl.And(ltl.Eventually(ltl.Atom(p)), ltl.Eventually(ltl.Atom(q)))
	g := Build(phi)
	require.Len(t, g.Acceptance, 2)

	ba := Degeneralize(g)
	require.NotEmpty(t, ba.States)

	maxCounter := 0
	for _, st := range ba.States {
		if st.Counter > maxCounter {
			maxCounter = st.Counter
		}
	}
	assert.LessOrEqual(t, maxCounter, 2)
	assert.GreaterOrEqual(t, maxCounter, 2)
}
