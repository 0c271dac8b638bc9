package rho

import (
	"errors"
	"fmt"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

var (
	// ErrDegenerateCollision means the two walks met with d ≡ d' (mod n),
	// which carries no information about the logarithm. Strategies retry it
	// with fresh randomness; it only escapes wrapped in
	// ErrRetryBudgetExceeded.
	ErrDegenerateCollision = errors.New("degenerate collision")

	// ErrRetryBudgetExceeded is returned when every attempt ended in a
	// degenerate collision or hit the step limit.
	ErrRetryBudgetExceeded = errors.New("retry budget exceeded")

	// ErrSearchTimeout is returned when the context is cancelled or its
	// deadline passes during a search.
	ErrSearchTimeout = errors.New("collision search timed out")

	// ErrStepLimit marks a single attempt that exceeded Config.MaxSteps.
	ErrStepLimit = errors.New("step limit reached")

	// ErrNoVerifiedLogarithm means no candidate l satisfies l·P = Q. It points
	// at bad inputs (Q outside <P>, wrong n) and is not retried.
	ErrNoVerifiedLogarithm = errors.New("no candidate logarithm verified")

	// ErrTooManyCandidates is returned when gcd(d'-d, n) exceeds
	// Config.MaxCandidates.
	ErrTooManyCandidates = errors.New("too many candidate logarithms")

	// ErrInvalidOrder is returned when n·P is not the identity.
	ErrInvalidOrder = errors.New("n is not the order of P")
)

// catchSingularity converts a curve.ErrArithmeticSingularity panic into an
// error. Any other panic is re-raised.
func catchSingularity(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && errors.Is(e, curve.ErrArithmeticSingularity) {
		*err = fmt.Errorf("internal invariant violated: %w", e)
		return
	}
	panic(r)
}
