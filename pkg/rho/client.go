package rho

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

// Client provides a high-level API for discrete-log recovery.
type Client struct {
	config   Config
	strategy SearchStrategy
	logger   zerolog.Logger
}

// NewClient creates a new client with default settings.
func NewClient() *Client {
	return &Client{
		config: DefaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig sets the search configuration. Unless a strategy was set
// explicitly, Workers > 1 selects the parallel strategy.
func (c *Client) WithConfig(config Config) *Client {
	c.config = config
	return c
}

// WithStrategy sets a custom search strategy.
func (c *Client) WithStrategy(strategy SearchStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithLogger sets the logger used by the client and its strategies.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.logger = logger
	return c
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// Strategy returns the strategy the client searches with.
func (c *Client) Strategy() SearchStrategy {
	if c.strategy != nil {
		return c.strategy
	}
	if c.config.Workers > 1 {
		return &ParallelStrategy{Config: c.config}
	}
	return &FloydStrategy{Config: c.config}
}

// FindCollision searches for a usable collision of the walk for Q = l·P.
//
// Args:
//   - ctx: Context for cancellation.
//   - params: Validated curve parameters; N must be the order of P.
//   - p, q: Generator and target point.
//
// Returns:
//   - The collision, or an error wrapping one of the package's sentinel errors.
func (c *Client) FindCollision(ctx context.Context, params *curve.Params, p, q curve.Point) (col *Collision, err error) {
	defer catchSingularity(&err)

	walk, err := c.prepare(params, p, q)
	if err != nil {
		return nil, err
	}

	ctx = c.logger.WithContext(ctx)
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	strategy := c.Strategy()
	c.logger.Info().Str("strategy", strategy.Name()).Str("curve", params.String()).
		Str("P", p.String()).Str("Q", q.String()).Msg("searching for collision")

	col, err = strategy.Search(ctx, walk)
	if err != nil {
		return nil, fmt.Errorf("collision search: %w", err)
	}
	return col, nil
}

// Solve finds a collision and resolves it into l with Q = l·P.
func (c *Client) Solve(ctx context.Context, params *curve.Params, p, q curve.Point) (*Result, error) {
	col, err := c.FindCollision(ctx, params, p, q)
	if err != nil {
		return nil, err
	}

	res, err := Solve(params, p, q, col, c.config.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("congruence: %w", err)
	}
	c.logger.Info().Str("l", res.Log.String()).Int("candidates", res.Candidates).Msg("discrete logarithm recovered")
	return res, nil
}

// prepare validates the inputs and builds the walk.
func (c *Client) prepare(params *curve.Params, p, q curve.Point) (*Walk, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: missing parameters", curve.ErrInvalidCurve)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	walk, err := NewWalk(params, p, q)
	if err != nil {
		return nil, err
	}
	if !params.Annihilates(params.N, p) {
		return nil, fmt.Errorf("%w: n=%s, P=%s", ErrInvalidOrder, params.N, p)
	}
	return walk, nil
}
