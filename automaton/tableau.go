package automaton

import (
	"sort"
	"strings"

	"github.com/rfielding/ltlcheck/ltl"
)

// branch is a partially expanded tableau node under construction: old
// holds every subformula already required to hold now (both compound
// obligations and the literals they were decomposed into), worklist
// holds subformulas not yet expanded, and next holds the X-obligations
// collected so far for the node's successor.
type branch struct {
	old      map[string]ltl.Formula
	worklist []ltl.Formula
	next     map[string]ltl.Formula
}

func cloneFormulaSet(m map[string]ltl.Formula) map[string]ltl.Formula {
	out := make(map[string]ltl.Formula, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// expand fully decomposes b's worklist into zero or more consistent,
// fully-expanded branches, following the α/β expansion rules of the
// standard LTL tableau construction (conjunctive formulas expand in
// place; disjunctive formulas fork the branch). Inconsistent branches
// (a literal and its negation both demanded now) are pruned.
func expand(b branch) []branch {
	if len(b.worklist) == 0 {
		return []branch{b}
	}
	f := b.worklist[0]
	rest := b.worklist[1:]
	fk := ltl.Key(f)

	if _, seen := b.old[fk]; seen {
		return expand(branch{old: b.old, worklist: rest, next: b.next})
	}

	old := cloneFormulaSet(b.old)
	old[fk] = f

	switch v := f.(type) {
	case ltl.BoolLitFormula:
		if !v.Value {
			return nil
		}
		return expand(branch{old: old, worklist: rest, next: b.next})

	case ltl.AtomicFormula:
		if negated(old, f) {
			return nil
		}
		return expand(branch{old: old, worklist: rest, next: b.next})

	case ltl.NotFormula:
		if bl, ok := v.Inner.(ltl.BoolLitFormula); ok {
			if bl.Value {
				return nil
			}
			return expand(branch{old: old, worklist: rest, next: b.next})
		}
		if negated(old, f) {
			return nil
		}
		return expand(branch{old: old, worklist: rest, next: b.next})

	case ltl.AndFormula:
		next := append([]ltl.Formula{v.Left, v.Right}, rest...)
		return expand(branch{old: old, worklist: next, next: b.next})

	case ltl.OrFormula:
		left := expand(branch{old: old, worklist: append([]ltl.Formula{v.Left}, rest...), next: b.next})
		right := expand(branch{old: old, worklist: append([]ltl.Formula{v.Right}, rest...), next: b.next})
		return append(left, right...)

	case ltl.ImpliesFormula:
		// Normalized input never contains implies, but expand stays
		// total over every Formula variant rather than panicking.
		rewritten := ltl.Or(ltl.Not(v.Left), v.Right)
		return expand(branch{old: b.old, worklist: append([]ltl.Formula{rewritten}, rest...), next: b.next})

	case ltl.NextFormula:
		nx := cloneFormulaSet(b.next)
		nx[ltl.Key(v.Inner)] = v.Inner
		return expand(branch{old: old, worklist: rest, next: nx})

	case ltl.EventuallyFormula:
		// Fψ ≡ ψ ∨ X(Fψ)
		left := expand(branch{old: old, worklist: append([]ltl.Formula{v.Inner}, rest...), next: b.next})
		nx := cloneFormulaSet(b.next)
		nx[fk] = f
		right := expand(branch{old: old, worklist: rest, next: nx})
		return append(left, right...)

	case ltl.GloballyFormula:
		// Gψ ≡ ψ ∧ X(Gψ)
		nx := cloneFormulaSet(b.next)
		nx[fk] = f
		return expand(branch{old: old, worklist: append([]ltl.Formula{v.Inner}, rest...), next: nx})

	case ltl.UntilFormula:
		// ψUχ ≡ χ ∨ (ψ ∧ X(ψUχ))
		left := expand(branch{old: old, worklist: append([]ltl.Formula{v.Right}, rest...), next: b.next})
		nx := cloneFormulaSet(b.next)
		nx[fk] = f
		right := expand(branch{old: old, worklist: append([]ltl.Formula{v.Left}, rest...), next: nx})
		return append(left, right...)

	case ltl.WeakUntilFormula:
		// ψWχ ≡ χ ∨ (ψ ∧ X(ψWχ))
		left := expand(branch{old: old, worklist: append([]ltl.Formula{v.Right}, rest...), next: b.next})
		nx := cloneFormulaSet(b.next)
		nx[fk] = f
		right := expand(branch{old: old, worklist: append([]ltl.Formula{v.Left}, rest...), next: nx})
		return append(left, right...)

	case ltl.ReleaseFormula:
		// ψRχ ≡ χ ∧ (ψ ∨ X(ψRχ))
		both := expand(branch{old: old, worklist: append([]ltl.Formula{v.Right, v.Left}, rest...), next: b.next})
		nx := cloneFormulaSet(b.next)
		nx[fk] = f
		deferred := expand(branch{old: old, worklist: append([]ltl.Formula{v.Right}, rest...), next: nx})
		return append(both, deferred...)

	default:
		panic("automaton: expand: unreachable formula variant")
	}
}

// negated reports whether old already contains the logical negation of
// f, where f is an atomic literal or a not-atomic literal.
func negated(old map[string]ltl.Formula, f ltl.Formula) bool {
	switch v := f.(type) {
	case ltl.AtomicFormula:
		_, ok := old[ltl.Key(ltl.Not(f))]
		return ok
	case ltl.NotFormula:
		_, ok := old[ltl.Key(v.Inner)]
		return ok
	}
	return false
}

// literalGuard projects a node's now-obligations onto the atomic
// literals among them; this is the state's edge-triggering label.
func literalGuard(now map[string]ltl.Formula) Guard {
	var g Guard
	for _, f := range now {
		switch v := f.(type) {
		case ltl.AtomicFormula:
			g = append(g, Literal{PropID: v.Prop.ID(), Value: true})
		case ltl.NotFormula:
			if atom, ok := v.Inner.(ltl.AtomicFormula); ok {
				g = append(g, Literal{PropID: atom.Prop.ID(), Value: false})
			}
		}
	}
	sort.Slice(g, func(i, j int) bool {
		if g[i].PropID.String() != g[j].PropID.String() {
			return g[i].PropID.String() < g[j].PropID.String()
		}
		return g[i].Value
	})
	return g
}

// formulaSetSignature builds a canonical string key for a set of
// formulas, used to deduplicate tableau nodes and successor seeds.
func formulaSetSignature(fs []ltl.Formula) string {
	keys := make([]string, len(fs))
	for i, f := range fs {
		keys[i] = ltl.Key(f)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}

func formulaMapValues(m map[string]ltl.Formula) []ltl.Formula {
	out := make([]ltl.Formula, 0, len(m))
	for _, f := range m {
		out = append(out, f)
	}
	return out
}
