// Package checker provides the model-checker façade: it orchestrates
// normalization, tableau/automaton construction, degeneralization, and
// the product emptiness search into a single public check operation.
package checker

import (
	"context"
	"errors"
	"fmt"

	"github.com/rfielding/ltlcheck/automaton"
	"github.com/rfielding/ltlcheck/kripke"
	"github.com/rfielding/ltlcheck/ltl"
	"github.com/rfielding/ltlcheck/product"
	"github.com/rs/zerolog"
)

// Counterexample is a lasso prefix·cycle^ω over Kripke states
// witnessing that a formula fails on a model.
type Counterexample[S comparable] struct {
	Prefix []S
	Cycle  []S
}

// Result is the outcome of Check: either Holds is true, or Example
// carries a witnessing counterexample.
type Result[S comparable] struct {
	Holds   bool
	Example *Counterexample[S]
}

// ErrAlgorithmsNotImplemented signals a request for a capability the
// engine does not (yet) provide. The engine itself never needs to
// raise this today; it exists for forward-compatible error taxonomy.
type ErrAlgorithmsNotImplemented struct {
	Culprit string
}

func (e *ErrAlgorithmsNotImplemented) Error() string {
	return fmt.Sprintf("checker: algorithm not implemented: %s", e.Culprit)
}

// ErrInternalProcessingError wraps a bug in the engine's own
// invariants: normalization or automaton construction is not expected
// to fail on semantic grounds for a well-formed formula, so any
// failure at that stage is a bug, not a user error.
type ErrInternalProcessingError struct {
	Details string
}

func (e *ErrInternalProcessingError) Error() string {
	return fmt.Sprintf("checker: internal processing error: %s", e.Details)
}

// Options configures a Checker's optional diagnostics. A nil Logger
// disables logging entirely: an injectable, optional *zerolog.Logger
// rather than a package-global.
type Options struct {
	Logger *zerolog.Logger
}

// Checker is the model-checker façade, generic over the caller's
// Kripke state type. Its zero value is ready to use with default (no)
// logging.
type Checker[S comparable] struct {
	opts Options
}

// NewChecker builds a Checker with opts. Passing the zero Options
// disables diagnostic logging.
func NewChecker[S comparable](opts Options) *Checker[S] {
	return &Checker[S]{opts: opts}
}

func (c *Checker[S]) logger() *zerolog.Logger {
	return c.opts.Logger
}

func (c *Checker[S]) logf(event func(*zerolog.Logger) *zerolog.Event, msg string) {
	l := c.logger()
	if l == nil {
		return
	}
	event(l).Msg(msg)
}

// normalize wraps ltl.NormalizeCapped, surfacing a non-convergent
// fixpoint as a warning rather than silently returning the best
// available intermediate.
func (c *Checker[S]) normalize(f ltl.Formula) ltl.Formula {
	normalized, converged := ltl.NormalizeCapped(f)
	if !converged {
		c.logf(func(l *zerolog.Logger) *zerolog.Event { return l.Warn() },
			"normalization did not converge within the iteration cap; proceeding with the last intermediate form")
	}
	return normalized
}

// Check decides whether model satisfies formula, using a Checker with
// default (no) logging. See (*Checker[S]).Check for the pipeline.
func Check[S comparable](ctx context.Context, formula ltl.Formula, model kripke.Structure[S]) (Result[S], error) {
	return NewChecker[S](Options{}).Check(ctx, formula, model)
}

// Check decides whether model satisfies formula, by running the
// pipeline: normalize, negate, normalize, build the GBA for the
// negation, degeneralize to a BA, take the synchronous product with
// model, and search it for an accepting lasso via nested DFS. A
// non-empty product language means model admits a run violating
// formula, surfaced as a Counterexample.
func (c *Checker[S]) Check(ctx context.Context, formula ltl.Formula, model kripke.Structure[S]) (Result[S], error) {
	normalized := c.normalize(formula)
	negated := c.normalize(ltl.Not(normalized))

	c.logf(func(l *zerolog.Logger) *zerolog.Event { return l.Debug() }, "normalized formula and its negation built")

	gba := automaton.Build(negated)
	ba := automaton.Degeneralize(gba)

	c.logf(func(l *zerolog.Logger) *zerolog.Event {
		return l.Debug().Int("gba_states", len(gba.States)).Int("ba_states", len(ba.States))
	}, "tableau automaton constructed")

	machine := product.New[S](model, ba)
	ce, err := product.CheckEmptiness[S](ctx, machine)
	if err != nil {
		if errors.Is(err, product.ErrCancelled) {
			return Result[S]{}, &ErrInternalProcessingError{Details: "cancelled"}
		}
		return Result[S]{}, &ErrInternalProcessingError{Details: err.Error()}
	}

	if ce == nil {
		c.logf(func(l *zerolog.Logger) *zerolog.Event { return l.Info() }, "model satisfies formula")
		return Result[S]{Holds: true}, nil
	}

	c.logf(func(l *zerolog.Logger) *zerolog.Event {
		return l.Info().Int("prefix_len", len(ce.Prefix)).Int("cycle_len", len(ce.Cycle))
	}, "model violates formula: counterexample found")

	return Result[S]{
		Holds: false,
		Example: &Counterexample[S]{
			Prefix: ce.Prefix,
			Cycle:  ce.Cycle,
		},
	}, nil
}
