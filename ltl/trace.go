package ltl

import "fmt"

// ContextProvider builds the EvaluationContext a proposition should see
// when the trace is at the given state and index. S is the caller's
// state type.
type ContextProvider[S any] func(index int, state S) EvaluationContext

// Evaluate decides whether formula holds at the first position of
// trace, a non-empty finite sequence of states with no declared cycle.
// A proposition evaluation failure propagates unchanged.
func Evaluate[S any](formula Formula, trace []S, ctx ContextProvider[S]) (bool, error) {
	if len(trace) == 0 {
		return false, fmt.Errorf("ltl: evaluate: trace must be non-empty")
	}
	e := &finiteEvaluator[S]{trace: trace, ctx: ctx}
	return e.at(formula, 0)
}

type finiteEvaluator[S any] struct {
	trace []S
	ctx   ContextProvider[S]
}

func (e *finiteEvaluator[S]) at(f Formula, i int) (bool, error) {
	n := len(e.trace)
	switch v := f.(type) {
	case BoolLitFormula:
		return v.Value, nil
	case AtomicFormula:
		ok, err := v.Prop.Evaluate(e.ctx(i, e.trace[i]))
		if err != nil {
			return false, err
		}
		return ok, nil
	case NotFormula:
		b, err := e.at(v.Inner, i)
		return !b, err
	case AndFormula:
		l, err := e.at(v.Left, i)
		if err != nil {
			return false, err
		}
		r, err := e.at(v.Right, i)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case OrFormula:
		l, err := e.at(v.Left, i)
		if err != nil {
			return false, err
		}
		r, err := e.at(v.Right, i)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case ImpliesFormula:
		l, err := e.at(v.Left, i)
		if err != nil {
			return false, err
		}
		r, err := e.at(v.Right, i)
		if err != nil {
			return false, err
		}
		return !l || r, nil
	case NextFormula:
		if i+1 >= n {
			return false, nil
		}
		return e.at(v.Inner, i+1)
	case EventuallyFormula:
		for j := i; j < n; j++ {
			ok, err := e.at(v.Inner, j)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case GloballyFormula:
		for j := i; j < n; j++ {
			ok, err := e.at(v.Inner, j)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case UntilFormula:
		for j := i; j < n; j++ {
			psi, err := e.at(v.Right, j)
			if err != nil {
				return false, err
			}
			if !psi {
				continue
			}
			ok := true
			for k := i; k < j; k++ {
				phi, err := e.at(v.Left, k)
				if err != nil {
					return false, err
				}
				if !phi {
					ok = false
					break
				}
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case WeakUntilFormula:
		// φ W ψ = (φ U ψ) ∨ G φ
		u, err := e.at(UntilFormula{Left: v.Left, Right: v.Right}, i)
		if err != nil {
			return false, err
		}
		if u {
			return true, nil
		}
		return e.at(GloballyFormula{Inner: v.Left}, i)
	case ReleaseFormula:
		// φ R ψ = ¬(¬φ U ¬ψ)
		b, err := e.at(UntilFormula{Left: NotFormula{Inner: v.Left}, Right: NotFormula{Inner: v.Right}}, i)
		return !b, err
	default:
		panic(fmt.Sprintf("ltl: evaluate: unreachable formula variant %T", f))
	}
}

// Lasso is a finite representation of an infinite trace prefix·cycle^ω.
type Lasso[S any] struct {
	Prefix []S
	Cycle  []S
}

// EvaluateLasso decides whether formula holds at the start of the lasso
// prefix·cycle^ω. The finite suffix is folded into the cycle to decide
// liveness operators (F, G, U, W, R) on the infinite unfolding.
// cycle must be non-empty.
//
// Internally this builds the single-successor "path graph" of lasso
// positions (each prefix position points to the next, the last prefix
// position points into the start of the cycle, and the last cycle
// position wraps back to the first) and runs least/greatest fixpoint
// iterations in the style of CTL's EG/EU algorithms, since a
// linear path is the degenerate case of a branching Kripke structure
// where every state has exactly one successor.
func EvaluateLasso[S any](formula Formula, prefix, cycle []S, ctx ContextProvider[S]) (bool, error) {
	if len(cycle) == 0 {
		return false, fmt.Errorf("ltl: evaluateLasso: cycle must be non-empty")
	}
	l := &lassoEvaluator[S]{
		prefix: prefix,
		cycle:  cycle,
		ctx:    ctx,
		memo:   make(map[string][]bool),
	}
	result, err := l.sat(formula)
	if err != nil {
		return false, err
	}
	return result[0], nil
}

type lassoEvaluator[S any] struct {
	prefix []S
	cycle  []S
	ctx    ContextProvider[S]
	memo   map[string][]bool
}

func (l *lassoEvaluator[S]) positions() int { return len(l.prefix) + len(l.cycle) }

func (l *lassoEvaluator[S]) succ(pos int) int {
	if pos < l.positions()-1 {
		return pos + 1
	}
	return len(l.prefix) // wrap into the start of the cycle
}

func (l *lassoEvaluator[S]) at(pos int) S {
	if pos < len(l.prefix) {
		return l.prefix[pos]
	}
	return l.cycle[pos-len(l.prefix)]
}

func (l *lassoEvaluator[S]) sat(f Formula) ([]bool, error) {
	if cached, ok := l.memo[f.key()]; ok {
		return cached, nil
	}
	n := l.positions()
	result := make([]bool, n)
	switch v := f.(type) {
	case BoolLitFormula:
		for i := range result {
			result[i] = v.Value
		}
	case AtomicFormula:
		for i := 0; i < n; i++ {
			ok, err := v.Prop.Evaluate(l.ctx(i, l.at(i)))
			if err != nil {
				return nil, err
			}
			result[i] = ok
		}
	case NotFormula:
		inner, err := l.sat(v.Inner)
		if err != nil {
			return nil, err
		}
		for i := range result {
			result[i] = !inner[i]
		}
	case AndFormula:
		lhs, err := l.sat(v.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := l.sat(v.Right)
		if err != nil {
			return nil, err
		}
		for i := range result {
			result[i] = lhs[i] && rhs[i]
		}
	case OrFormula:
		lhs, err := l.sat(v.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := l.sat(v.Right)
		if err != nil {
			return nil, err
		}
		for i := range result {
			result[i] = lhs[i] || rhs[i]
		}
	case ImpliesFormula:
		lhs, err := l.sat(v.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := l.sat(v.Right)
		if err != nil {
			return nil, err
		}
		for i := range result {
			result[i] = !lhs[i] || rhs[i]
		}
	case NextFormula:
		inner, err := l.sat(v.Inner)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			result[i] = inner[l.succ(i)]
		}
	case EventuallyFormula:
		inner, err := l.sat(v.Inner)
		if err != nil {
			return nil, err
		}
		copy(result, inner)
		for changed := true; changed; {
			changed = false
			for i := 0; i < n; i++ {
				if !result[i] && result[l.succ(i)] {
					result[i] = true
					changed = true
				}
			}
		}
	case GloballyFormula:
		inner, err := l.sat(v.Inner)
		if err != nil {
			return nil, err
		}
		copy(result, inner)
		for changed := true; changed; {
			changed = false
			for i := 0; i < n; i++ {
				if result[i] && !result[l.succ(i)] {
					result[i] = false
					changed = true
				}
			}
		}
	case UntilFormula:
		lhs, err := l.sat(v.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := l.sat(v.Right)
		if err != nil {
			return nil, err
		}
		copy(result, rhs)
		for changed := true; changed; {
			changed = false
			for i := 0; i < n; i++ {
				if !result[i] && lhs[i] && result[l.succ(i)] {
					result[i] = true
					changed = true
				}
			}
		}
	case WeakUntilFormula:
		u, err := l.sat(UntilFormula{Left: v.Left, Right: v.Right})
		if err != nil {
			return nil, err
		}
		g, err := l.sat(GloballyFormula{Inner: v.Left})
		if err != nil {
			return nil, err
		}
		for i := range result {
			result[i] = u[i] || g[i]
		}
	case ReleaseFormula:
		lhs, err := l.sat(v.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := l.sat(v.Right)
		if err != nil {
			return nil, err
		}
		// Greatest fixpoint of φ R ψ = ψ ∧ (φ ∨ X(φ R ψ)): start
		// optimistic and shrink, the dual of Eventually's climb.
		for i := range result {
			result[i] = true
		}
		for changed := true; changed; {
			changed = false
			for i := 0; i < n; i++ {
				if result[i] && !(rhs[i] && (lhs[i] || result[l.succ(i)])) {
					result[i] = false
					changed = true
				}
			}
		}
	default:
		return nil, fmt.Errorf("ltl: evaluateLasso: unreachable formula variant %T", f)
	}
	l.memo[f.key()] = result
	return result, nil
}
