// Package ltl implements the LTL formula algebra: an immutable, value-typed
// formula tree with structural equality and hashing, Negation Normal Form
// normalization, a trace evaluator, and the single-step transducer
// semantics (Step).
package ltl

import (
	"fmt"
	"hash/fnv"
)

// Formula is a node in an LTL formula tree. The interface is sealed to
// this package's concrete node types via the unexported key method.
type Formula interface {
	fmt.Stringer
	key() string
}

// Equal reports whether a and b are the same formula, structurally: same
// shape, same leaf propositions (by PropositionID). It does not perform
// any semantic reasoning; two formulas that are logically equivalent but
// shaped differently compare unequal.
func Equal(a, b Formula) bool {
	return a.key() == b.key()
}

// Hash returns a structural hash of f, consistent with Equal: Equal(a, b)
// implies Hash(a) == Hash(b).
func Hash(f Formula) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(f.key()))
	return h.Sum64()
}

// Key exposes f's structural key to other packages in this module (the
// tableau construction needs it to deduplicate nodes and obligation
// sets). It is equivalent to comparing via Equal.
func Key(f Formula) string { return f.key() }

// ---- boolean literal ----

// BoolLitFormula is the constant ⊤ or ⊥.
type BoolLitFormula struct{ Value bool }

// True constructs the constant ⊤.
func True() Formula { return BoolLitFormula{Value: true} }

// False constructs the constant ⊥.
func False() Formula { return BoolLitFormula{Value: false} }

func (b BoolLitFormula) key() string {
	if b.Value {
		return "T"
	}
	return "F"
}
func (b BoolLitFormula) String() string {
	if b.Value {
		return "⊤"
	}
	return "⊥"
}

// ---- atomic proposition ----

// AtomicFormula is a leaf proposition.
type AtomicFormula struct{ Prop Proposition }

// Atom wraps a proposition as a formula leaf.
func Atom(p Proposition) Formula { return AtomicFormula{Prop: p} }

func (a AtomicFormula) key() string   { return "P:" + a.Prop.ID().String() }
func (a AtomicFormula) String() string { return a.Prop.Name() }

// ---- boolean connectives ----

// NotFormula is ¬φ.
type NotFormula struct{ Inner Formula }

// Not constructs ¬φ. Callers building formulas for normalization need not
// pre-push negations; Normalize does that.
func Not(f Formula) Formula { return NotFormula{Inner: f} }

func (n NotFormula) key() string   { return "!(" + n.Inner.key() + ")" }
func (n NotFormula) String() string { return fmt.Sprintf("¬%s", n.Inner) }

// AndFormula is φ ∧ ψ.
type AndFormula struct{ Left, Right Formula }

// And constructs φ ∧ ψ.
func And(l, r Formula) Formula { return AndFormula{Left: l, Right: r} }

func (a AndFormula) key() string   { return "&(" + a.Left.key() + "," + a.Right.key() + ")" }
func (a AndFormula) String() string { return fmt.Sprintf("(%s ∧ %s)", a.Left, a.Right) }

// OrFormula is φ ∨ ψ.
type OrFormula struct{ Left, Right Formula }

// Or constructs φ ∨ ψ.
func Or(l, r Formula) Formula { return OrFormula{Left: l, Right: r} }

func (o OrFormula) key() string   { return "|(" + o.Left.key() + "," + o.Right.key() + ")" }
func (o OrFormula) String() string { return fmt.Sprintf("(%s ∨ %s)", o.Left, o.Right) }

// ImpliesFormula is φ → ψ.
type ImpliesFormula struct{ Left, Right Formula }

// Implies constructs φ → ψ. Normalize rewrites it to ¬φ ∨ ψ.
func Implies(l, r Formula) Formula { return ImpliesFormula{Left: l, Right: r} }

func (i ImpliesFormula) key() string   { return "->(" + i.Left.key() + "," + i.Right.key() + ")" }
func (i ImpliesFormula) String() string { return fmt.Sprintf("(%s → %s)", i.Left, i.Right) }

// ---- temporal operators ----

// NextFormula is X φ.
type NextFormula struct{ Inner Formula }

// Next constructs X φ.
func Next(f Formula) Formula { return NextFormula{Inner: f} }

// X is a concise alias for Next.
func X(f Formula) Formula { return Next(f) }

func (n NextFormula) key() string   { return "X(" + n.Inner.key() + ")" }
func (n NextFormula) String() string { return fmt.Sprintf("X %s", n.Inner) }

// EventuallyFormula is F φ.
type EventuallyFormula struct{ Inner Formula }

// Eventually constructs F φ.
func Eventually(f Formula) Formula { return EventuallyFormula{Inner: f} }

// F is an alias for Eventually.
func F(f Formula) Formula { return Eventually(f) }

func (e EventuallyFormula) key() string   { return "F(" + e.Inner.key() + ")" }
func (e EventuallyFormula) String() string { return fmt.Sprintf("F %s", e.Inner) }

// GloballyFormula is G φ.
type GloballyFormula struct{ Inner Formula }

// Globally constructs G φ.
func Globally(f Formula) Formula { return GloballyFormula{Inner: f} }

// G is an alias for Globally.
func G(f Formula) Formula { return Globally(f) }

func (g GloballyFormula) key() string   { return "G(" + g.Inner.key() + ")" }
func (g GloballyFormula) String() string { return fmt.Sprintf("G %s", g.Inner) }

// UntilFormula is φ U ψ.
type UntilFormula struct{ Left, Right Formula }

// Until constructs φ U ψ.
func Until(l, r Formula) Formula { return UntilFormula{Left: l, Right: r} }

// U is an alias for Until.
func U(l, r Formula) Formula { return Until(l, r) }

func (u UntilFormula) key() string   { return "U(" + u.Left.key() + "," + u.Right.key() + ")" }
func (u UntilFormula) String() string { return fmt.Sprintf("(%s U %s)", u.Left, u.Right) }

// WeakUntilFormula is φ W ψ.
type WeakUntilFormula struct{ Left, Right Formula }

// WeakUntil constructs φ W ψ.
func WeakUntil(l, r Formula) Formula { return WeakUntilFormula{Left: l, Right: r} }

// W is an alias for WeakUntil.
func W(l, r Formula) Formula { return WeakUntil(l, r) }

func (w WeakUntilFormula) key() string   { return "W(" + w.Left.key() + "," + w.Right.key() + ")" }
func (w WeakUntilFormula) String() string { return fmt.Sprintf("(%s W %s)", w.Left, w.Right) }

// ReleaseFormula is φ R ψ.
type ReleaseFormula struct{ Left, Right Formula }

// Release constructs φ R ψ.
func Release(l, r Formula) Formula { return ReleaseFormula{Left: l, Right: r} }

// R is an alias for Release.
func R(l, r Formula) Formula { return Release(l, r) }

func (r ReleaseFormula) key() string   { return "R(" + r.Left.key() + "," + r.Right.key() + ")" }
func (r ReleaseFormula) String() string { return fmt.Sprintf("(%s R %s)", r.Left, r.Right) }
