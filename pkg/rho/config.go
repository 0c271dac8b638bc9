package rho

import (
	"context"
	"math/big"
	"time"
)

// SearchStrategy finds a usable collision for a walk.
// Implement this interface to plug a different cycle-finding method into the
// Client.
type SearchStrategy interface {
	// Search returns a collision whose hare and tortoise differ in d, or an
	// error wrapping ErrRetryBudgetExceeded or ErrSearchTimeout.
	Search(ctx context.Context, walk *Walk) (*Collision, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}

// Config configures the collision search and the congruence solver.
type Config struct {
	// MaxAttempts bounds the number of fresh starts per search.
	MaxAttempts int

	// MaxSteps bounds the tortoise steps of one attempt (0 = derived from n).
	MaxSteps uint64

	// MaxCandidates bounds gcd(d'-d, n), the number of lifts the solver
	// checks.
	MaxCandidates int64

	// Workers is the number of independent walks raced in parallel
	// (0 or 1 = a single walk).
	Workers int

	// Seed seeds the starting-point generator (0 = seed from crypto/rand).
	// Worker i uses Seed+i.
	Seed int64

	// Timeout bounds the whole search (0 = no deadline beyond the caller's
	// context).
	Timeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   64,
		MaxSteps:      0, // Derived from n
		MaxCandidates: 1 << 20,
		Workers:       1,
		Seed:          0,
		Timeout:       0,
	}
}

// stepLimit returns the per-attempt step ceiling for a group of order n.
// Floyd's algorithm meets within n iterations when Q lies in <P>, so small
// groups are capped at n+1; larger ones at 64·⌈√n⌉ + 4096.
func (c Config) stepLimit(n *big.Int) uint64 {
	if c.MaxSteps > 0 {
		return c.MaxSteps
	}
	root := new(big.Int).Sqrt(n)
	root.Add(root, big.NewInt(1))
	limit := root.Mul(root, big.NewInt(64))
	limit.Add(limit, big.NewInt(4096))

	exhaustive := new(big.Int).Add(n, big.NewInt(1))
	if exhaustive.Cmp(limit) < 0 {
		limit = exhaustive
	}
	if !limit.IsUint64() {
		return ^uint64(0)
	}
	return limit.Uint64()
}
