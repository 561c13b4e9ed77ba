package automaton

import (
	"testing"

	"github.com/rfielding/ltlcheck/ltl"
	"github.com/rfielding/ltlcheck/propid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProp(name string) ltl.Proposition {
	return ltl.NewProposition(propid.MustNew(name), name, func(ltl.EvaluationContext) (bool, error) {
		return false, nil
	})
}

func TestBuildBareAtomicHasSinkSuccessor(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.Atom(p))

	require.Len(t, g.States, 2)
	require.Len(t, g.Initial, 1)

	initial := g.States[g.Initial[0]]
	require.Len(t, initial.Guard, 1)
	assert.Equal(t, "p", initial.Guard[0].PropID.String())
	assert.True(t, initial.Guard[0].Value)
	require.Len(t, initial.Succ, 1)

	sink := g.States[initial.Succ[0]]
	assert.Empty(t, sink.Guard)
	require.Len(t, sink.Succ, 1)
	assert.Equal(t, initial.Succ[0], sink.Succ[0], "the unconstrained sink self-loops")
}

func TestBuildNoTemporalSubformulaYieldsTrivialAcceptance(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.Atom(p))
	require.Len(t, g.Acceptance, 1)
	assert.Len(t, g.Acceptance[0], len(g.States), "with no until/eventually, every state accepts")
}

func TestBuildEventuallyGeneratesAcceptanceFamily(t *testing.T) {
	p := testProp("p")
	phi := ltl.Eventually(ltl.Atom(p))
	g := Build(phi)

	require.Len(t, g.Acceptance, 1)

	// A state is in F iff it either doesn't carry the Fp obligation, or
	// carries p itself (discharging it); a state that owes Fp without p
	// is excluded from F.
	family := make(map[int]bool, len(g.Acceptance[0]))
	for _, id := range g.Acceptance[0] {
		family[id] = true
	}
	for i, st := range g.States {
		fKey := ltl.Key(phi)
		pKey := ltl.Key(ltl.Atom(p))
		_, hasObligation := st.Now[fKey]
		_, hasP := st.Now[pKey]
		if hasObligation && !hasP {
			assert.False(t, family[i], "state %d still owes Fp without discharging it, must not be in F", i)
		} else {
			assert.True(t, family[i], "state %d should be accepting", i)
		}
	}
}

func TestBuildAndFormulaConjoinsObligations(t *testing.T) {
	p, q := testProp("p"), testProp("q")
	g := Build(ltl.And(ltl.Atom(p), ltl.Atom(q)))

	require.Len(t, g.Initial, 1)
	initial := g.States[g.Initial[0]]
	require.Len(t, initial.Guard, 2)
}

func TestBuildOrFormulaForksIntoTwoInitialBranches(t *testing.T) {
	p, q := testProp("p"), testProp("q")
	g := Build(ltl.Or(ltl.Atom(p), ltl.Atom(q)))
	require.Len(t, g.Initial, 2)
}

func TestBuildInconsistentConjunctionPrunesAllBranches(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.And(ltl.Atom(p), ltl.Not(ltl.Atom(p))))
	assert.Empty(t, g.Initial, "p and not-p can never hold simultaneously")
}

func TestBuildNextDefersObligationToSuccessor(t *testing.T) {
	p := testProp("p")
	g := Build(ltl.Next(ltl.Atom(p)))

	require.Len(t, g.Initial, 1)
	initial := g.States[g.Initial[0]]
	assert.Empty(t, initial.Guard, "X p places no literal constraint on the current step")
	require.Len(t, initial.Succ, 1)

	succ := g.States[initial.Succ[0]]
	require.Len(t, succ.Guard, 1)
	assert.Equal(t, "p", succ.Guard[0].PropID.String())
}
