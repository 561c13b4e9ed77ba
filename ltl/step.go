package ltl

import "fmt"

// StepResult is the outcome of advancing a formula by one step of the
// single-step transducer semantics: whether the formula holds now, and
// the obligation that must hold from the next position onward.
type StepResult struct {
	HoldsNow bool
	Next     Formula
}

// Step implements the step(φ, ctx) transducer: it reports whether φ is
// satisfied by the current step and the residual obligation the rest of
// the trace must satisfy. Until, WeakUntil, and Release are not given
// directly by a primitive transition; they are unfolded through their
// one-step identity (the same one the tableau closure uses, e.g.
// ψUχ ≡ χ∨(ψ∧X(ψUχ))) and then stepped as the equivalent
// propositional/Next shape, keeping Step total over every Formula
// variant.
func Step(f Formula, ctx EvaluationContext) (StepResult, error) {
	switch v := f.(type) {
	case BoolLitFormula:
		return StepResult{HoldsNow: v.Value, Next: True()}, nil
	case AtomicFormula:
		ok, err := v.Prop.Evaluate(ctx)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{HoldsNow: ok, Next: True()}, nil
	case NotFormula:
		inner, err := Step(v.Inner, ctx)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{HoldsNow: !inner.HoldsNow, Next: Not(inner.Next)}, nil
	case AndFormula:
		l, err := Step(v.Left, ctx)
		if err != nil {
			return StepResult{}, err
		}
		r, err := Step(v.Right, ctx)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{HoldsNow: l.HoldsNow && r.HoldsNow, Next: And(l.Next, r.Next)}, nil
	case OrFormula:
		l, err := Step(v.Left, ctx)
		if err != nil {
			return StepResult{}, err
		}
		r, err := Step(v.Right, ctx)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{HoldsNow: l.HoldsNow || r.HoldsNow, Next: Or(l.Next, r.Next)}, nil
	case ImpliesFormula:
		l, err := Step(v.Left, ctx)
		if err != nil {
			return StepResult{}, err
		}
		r, err := Step(v.Right, ctx)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{HoldsNow: !l.HoldsNow || r.HoldsNow, Next: Or(Not(l.Next), r.Next)}, nil
	case NextFormula:
		// The inner obligation is deferred untouched: it is not stepped
		// here, so an atomic inside it does not evaluate at this index.
		return StepResult{HoldsNow: true, Next: v.Inner}, nil
	case EventuallyFormula:
		inner, err := Step(v.Inner, ctx)
		if err != nil {
			return StepResult{}, err
		}
		if inner.HoldsNow {
			return StepResult{HoldsNow: true, Next: True()}, nil
		}
		return StepResult{HoldsNow: false, Next: Eventually(v.Inner)}, nil
	case GloballyFormula:
		inner, err := Step(v.Inner, ctx)
		if err != nil {
			return StepResult{}, err
		}
		if inner.HoldsNow {
			return StepResult{HoldsNow: true, Next: Globally(v.Inner)}, nil
		}
		return StepResult{HoldsNow: false, Next: False()}, nil
	case UntilFormula:
		return Step(Or(v.Right, And(v.Left, Next(UntilFormula{Left: v.Left, Right: v.Right}))), ctx)
	case WeakUntilFormula:
		return Step(Or(v.Right, And(v.Left, Next(WeakUntilFormula{Left: v.Left, Right: v.Right}))), ctx)
	case ReleaseFormula:
		return Step(And(v.Right, Or(v.Left, Next(ReleaseFormula{Left: v.Left, Right: v.Right}))), ctx)
	default:
		panic(fmt.Sprintf("ltl: step: unreachable formula variant %T", f))
	}
}
