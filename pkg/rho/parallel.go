package rho

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ParallelStrategy races several independent Floyd walks with distinct seeds.
// The first usable collision wins and cancels the remaining workers. Workers
// share only the read-only Walk.
type ParallelStrategy struct {
	Config Config
}

// NewParallelStrategy creates a parallel strategy using one worker per CPU.
func NewParallelStrategy() *ParallelStrategy {
	cfg := DefaultConfig()
	cfg.Workers = runtime.NumCPU()
	return &ParallelStrategy{Config: cfg}
}

// WithConfig sets the configuration for the strategy.
func (s *ParallelStrategy) WithConfig(config Config) *ParallelStrategy {
	s.Config = config
	return s
}

// Name returns the name of this strategy.
func (s *ParallelStrategy) Name() string {
	return "ParallelFloyd"
}

// Search implements the SearchStrategy interface.
func (s *ParallelStrategy) Search(ctx context.Context, walk *Walk) (*Collision, error) {
	numWorkers := s.Config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("workers", numWorkers).Msg("starting parallel search")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultChan := make(chan *Collision, 1)
	single := &FloydStrategy{Config: s.Config}
	var totalSteps int64

	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		seed := seedFor(s.Config.Seed, w)
		workerCtx := logger.With().Int("worker", w).Logger().WithContext(ctx)

		g.Go(func() (err error) {
			defer catchSingularity(&err)

			col, err := single.search(workerCtx, walk, seed, &totalSteps)
			if err != nil {
				return err
			}
			select {
			case resultChan <- col:
				cancel()
			default:
			}
			return nil
		})
	}

	err := g.Wait()
	logger.Debug().Int64("total_steps", atomic.LoadInt64(&totalSteps)).Msg("parallel search finished")

	select {
	case col := <-resultChan:
		return col, nil
	default:
		return nil, err
	}
}
