package ltl

import "fmt"

// maxNormalizeIterations bounds the fixpoint iteration of Normalize
// ("cap iterations at a small constant, at least 15").
const maxNormalizeIterations = 15

// Normalize returns a formula semantically equivalent to f under LTL,
// in Negation Normal Form with the constant and tautology simplifications
// applied to a fixpoint. It never fails for well-formed input; a
// malformed Formula (one outside this package's sealed variant set,
// which cannot happen through the exported constructors) is a bug and
// panics.
func Normalize(f Formula) Formula {
	normalized, _ := NormalizeCapped(f)
	return normalized
}

// NormalizeCapped is Normalize with visibility into whether the fixpoint
// actually converged before maxNormalizeIterations ran out. Callers that
// want to surface the cap-reached case as a diagnostic use this
// instead of Normalize.
func NormalizeCapped(f Formula) (result Formula, converged bool) {
	cur := f
	for i := 0; i < maxNormalizeIterations; i++ {
		next := normalizePass(cur)
		if Equal(next, cur) {
			return next, true
		}
		cur = next
	}
	// Cap reached without convergence: return the last stable
	// intermediate rather than aborting.
	return cur, false
}

// normalizePass performs one bottom-up pass: implication elimination,
// negation pushing, and constant simplification, all applied together so
// each pass is already maximally reduced for the shapes it can see.
func normalizePass(f Formula) Formula {
	switch v := f.(type) {
	case BoolLitFormula:
		return v
	case AtomicFormula:
		return v
	case NotFormula:
		return pushNegation(normalizePass(v.Inner))
	case AndFormula:
		return simplifyAnd(normalizePass(v.Left), normalizePass(v.Right))
	case OrFormula:
		return simplifyOr(normalizePass(v.Left), normalizePass(v.Right))
	case ImpliesFormula:
		// A → B ⟼ ¬A ∨ B, then re-dispatch so the
		// fresh Not/Or nodes get pushed and simplified in this same pass.
		return normalizePass(Or(Not(v.Left), v.Right))
	case NextFormula:
		return simplifyNext(normalizePass(v.Inner))
	case EventuallyFormula:
		return simplifyEventually(normalizePass(v.Inner))
	case GloballyFormula:
		return simplifyGlobally(normalizePass(v.Inner))
	case UntilFormula:
		return simplifyUntil(normalizePass(v.Left), normalizePass(v.Right))
	case WeakUntilFormula:
		return simplifyWeakUntil(normalizePass(v.Left), normalizePass(v.Right))
	case ReleaseFormula:
		return simplifyRelease(normalizePass(v.Left), normalizePass(v.Right))
	default:
		panic(fmt.Sprintf("ltl: normalize: unreachable formula variant %T", f))
	}
}

// pushNegation computes the NNF of ¬inner, given that inner has already
// been through normalizePass (so inner itself contains no implies and is
// already maximally simplified). It implements the De Morgan / duality
// table for pushing negation through every operator down to the leaves.
func pushNegation(inner Formula) Formula {
	switch v := inner.(type) {
	case BoolLitFormula:
		if v.Value {
			return False() // ¬⊤ = ⊥
		}
		return True() // ¬⊥ = ⊤
	case AtomicFormula:
		return NotFormula{Inner: v} // NNF leaf: ¬atomic
	case NotFormula:
		return v.Inner // ¬¬A = A (v.Inner is itself already NNF)
	case AndFormula:
		return simplifyOr(pushNegation(v.Left), pushNegation(v.Right))
	case OrFormula:
		return simplifyAnd(pushNegation(v.Left), pushNegation(v.Right))
	case ImpliesFormula:
		panic("ltl: normalize: unreachable implies during negation push")
	case NextFormula:
		// ¬X A = X ¬A
		return simplifyNext(pushNegation(v.Inner))
	case EventuallyFormula:
		// ¬F A = G ¬A
		return simplifyGlobally(pushNegation(v.Inner))
	case GloballyFormula:
		// ¬G A = F ¬A
		return simplifyEventually(pushNegation(v.Inner))
	case UntilFormula:
		// ¬(A U B) = (¬A ∧ ¬B) R ¬B
		na := pushNegation(v.Left)
		nb := pushNegation(v.Right)
		return simplifyRelease(simplifyAnd(na, nb), nb)
	case WeakUntilFormula:
		// ¬(A W B) = ¬B U (¬A ∧ ¬B)
		na := pushNegation(v.Left)
		nb := pushNegation(v.Right)
		return simplifyUntil(nb, simplifyAnd(na, nb))
	case ReleaseFormula:
		// ¬(A R B) = ¬A U ¬B, the dual of A R B = ¬(¬A U ¬B)
		na := pushNegation(v.Left)
		nb := pushNegation(v.Right)
		return simplifyUntil(na, nb)
	default:
		panic(fmt.Sprintf("ltl: normalize: unreachable formula variant %T", inner))
	}
}

func isTrue(f Formula) bool  { b, ok := f.(BoolLitFormula); return ok && b.Value }
func isFalse(f Formula) bool { b, ok := f.(BoolLitFormula); return ok && !b.Value }

// isNegationOf reports whether a is syntactically ¬b or b is
// syntactically ¬a, used to realize "φ ∧ ¬φ = ⊥" / "φ ∨ ¬φ = ⊤".
func isNegationOf(a, b Formula) bool {
	if n, ok := a.(NotFormula); ok && Equal(n.Inner, b) {
		return true
	}
	if n, ok := b.(NotFormula); ok && Equal(n.Inner, a) {
		return true
	}
	return false
}

func simplifyAnd(a, b Formula) Formula {
	switch {
	case isFalse(a) || isFalse(b):
		return False()
	case isTrue(a):
		return b
	case isTrue(b):
		return a
	case Equal(a, b):
		return a
	case isNegationOf(a, b):
		return False()
	default:
		return AndFormula{Left: a, Right: b}
	}
}

func simplifyOr(a, b Formula) Formula {
	switch {
	case isTrue(a) || isTrue(b):
		return True()
	case isFalse(a):
		return b
	case isFalse(b):
		return a
	case Equal(a, b):
		return a
	case isNegationOf(a, b):
		return True()
	default:
		return OrFormula{Left: a, Right: b}
	}
}

func simplifyNext(a Formula) Formula {
	switch {
	case isTrue(a):
		return True()
	case isFalse(a):
		return False()
	default:
		return NextFormula{Inner: a}
	}
}

func simplifyEventually(a Formula) Formula {
	switch {
	case isTrue(a):
		return True()
	case isFalse(a):
		return False()
	}
	if _, ok := a.(EventuallyFormula); ok {
		return a // F F φ = F φ
	}
	return EventuallyFormula{Inner: a}
}

func simplifyGlobally(a Formula) Formula {
	switch {
	case isTrue(a):
		return True()
	case isFalse(a):
		return False()
	}
	if _, ok := a.(GloballyFormula); ok {
		return a // G G φ = G φ
	}
	return GloballyFormula{Inner: a}
}

func simplifyUntil(a, b Formula) Formula {
	switch {
	case isTrue(b):
		return True() // φ U ⊤ = ⊤
	case isFalse(b):
		return False() // φ U ⊥ = ⊥
	case isFalse(a):
		return b // ⊥ U φ = φ
	default:
		return UntilFormula{Left: a, Right: b}
	}
}

func simplifyWeakUntil(a, b Formula) Formula {
	switch {
	case isTrue(b):
		return True() // φ W ⊤ = ⊤
	case isFalse(b):
		return simplifyGlobally(a) // φ W ⊥ = G φ
	case isFalse(a):
		return b // ⊥ W φ = φ
	default:
		return WeakUntilFormula{Left: a, Right: b}
	}
}

func simplifyRelease(a, b Formula) Formula {
	switch {
	case isFalse(b):
		return False() // φ R ⊥ = ⊥
	case isTrue(b):
		return True() // φ R ⊤ = ⊤
	case isFalse(a):
		return simplifyGlobally(b) // ⊥ R φ = G φ
	case isTrue(a):
		return b // ⊤ R φ = φ
	default:
		return ReleaseFormula{Left: a, Right: b}
	}
}
