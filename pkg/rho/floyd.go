package rho

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// FloydStrategy runs a single tortoise/hare walk and restarts it from a fresh
// random point when the collision is degenerate or the step limit is hit.
type FloydStrategy struct {
	Config Config
}

// NewFloydStrategy creates a Floyd strategy with default settings.
func NewFloydStrategy() *FloydStrategy {
	return &FloydStrategy{Config: DefaultConfig()}
}

// WithConfig sets the configuration for the strategy.
func (s *FloydStrategy) WithConfig(config Config) *FloydStrategy {
	s.Config = config
	return s
}

// Name returns the name of this strategy.
func (s *FloydStrategy) Name() string {
	return "Floyd"
}

// Search implements the SearchStrategy interface.
func (s *FloydStrategy) Search(ctx context.Context, walk *Walk) (col *Collision, err error) {
	defer catchSingularity(&err)

	var steps int64
	return s.search(ctx, walk, seedFor(s.Config.Seed, 0), &steps)
}

// search runs up to MaxAttempts walks from one random source. totalSteps is
// shared with other workers and only updated atomically.
func (s *FloydStrategy) search(ctx context.Context, walk *Walk, seed int64, totalSteps *int64) (*Collision, error) {
	logger := zerolog.Ctx(ctx).With().Int64("seed", seed).Logger()
	n := walk.Curve().N
	maxSteps := s.Config.stepLimit(n)
	maxAttempts := s.Config.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	rnd := rand.New(rand.NewSource(seed))
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c0 := new(big.Int).Rand(rnd, n)
		logger.Debug().Int("attempt", attempt).Str("c0", c0.String()).Msg("starting walk")

		tortoise, hare, steps, err := floyd(ctx, walk, c0, maxSteps)
		atomic.AddInt64(totalSteps, int64(steps))
		if err != nil {
			if errors.Is(err, ErrSearchTimeout) {
				return nil, err
			}
			logger.Warn().Int("attempt", attempt).Uint64("steps", steps).Msg("step limit reached, restarting")
			lastErr = err
			continue
		}

		if tortoise.D.Cmp(hare.D) == 0 {
			logger.Debug().Int("attempt", attempt).Uint64("steps", steps).
				Str("c", tortoise.C.String()).Str("d", tortoise.D.String()).
				Msg("degenerate collision, restarting")
			lastErr = fmt.Errorf("%w: both walks reached %s with d=%s", ErrDegenerateCollision, tortoise.Position, tortoise.D)
			continue
		}

		logger.Info().Int("attempt", attempt).Uint64("steps", steps).
			Str("position", tortoise.Position.String()).Msg("collision found")
		return &Collision{
			Tortoise: tortoise,
			Hare:     hare,
			Steps:    steps,
			Attempts: attempt,
			Seed:     seed,
		}, nil
	}

	return nil, fmt.Errorf("%w: %d attempts: %w", ErrRetryBudgetExceeded, maxAttempts, lastErr)
}

// floyd advances the tortoise one step and the hare two steps until their
// positions match. The hare starts one step ahead of the tortoise.
func floyd(ctx context.Context, walk *Walk, c0 *big.Int, maxSteps uint64) (tortoise, hare WalkState, steps uint64, err error) {
	tortoise = walk.Start(c0)
	hare = walk.Next(tortoise)

	for !tortoise.Position.Equal(hare.Position) {
		if steps >= maxSteps {
			return tortoise, hare, steps, fmt.Errorf("%w after %d steps", ErrStepLimit, steps)
		}
		if steps%1024 == 0 {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return tortoise, hare, steps, fmt.Errorf("%w after %d steps: %w", ErrSearchTimeout, steps, ctxErr)
			}
		}
		tortoise = walk.Next(tortoise)
		hare = walk.Next(walk.Next(hare))
		steps++
	}
	return tortoise, hare, steps, nil
}

// seedFor returns the seed for worker i: base+i, or a fresh random seed when
// base is zero.
func seedFor(base int64, worker int) int64 {
	if base != 0 {
		return base + int64(worker)
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano() + int64(worker)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}
