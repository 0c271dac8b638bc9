package rho

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

// Partition identifies one of the three regions a walk position falls in.
type Partition int

const (
	S1 Partition = iota + 1 // identity or x < ⌊p/3⌋: add P
	S2                      // ⌊p/3⌋ ≤ x < 2⌊p/3⌋: double
	S3                      // x ≥ 2⌊p/3⌋: add Q
)

func (s Partition) String() string {
	switch s {
	case S1:
		return "S1"
	case S2:
		return "S2"
	case S3:
		return "S3"
	default:
		return fmt.Sprintf("Partition(%d)", int(s))
	}
}

// Walk is the pseudo-random walk x -> f(x) for a fixed pair of generators.
// It holds no mutable state and may be shared between goroutines.
type Walk struct {
	curve     *curve.Params
	p, q      curve.Point
	third     *big.Int
	twoThirds *big.Int
}

// NewWalk builds the walk for Q = l·P on the given curve. Params must have
// been validated; P and Q must be on the curve and P must not be the identity.
func NewWalk(params *curve.Params, p, q curve.Point) (*Walk, error) {
	if p.IsIdentity() {
		return nil, fmt.Errorf("%w: generator P is the identity", curve.ErrInvalidPoint)
	}
	if err := params.CheckPoint(p); err != nil {
		return nil, fmt.Errorf("generator P: %w", err)
	}
	if err := params.CheckPoint(q); err != nil {
		return nil, fmt.Errorf("target Q: %w", err)
	}

	third := new(big.Int).Quo(params.P, big.NewInt(3))
	return &Walk{
		curve:     params,
		p:         p,
		q:         q,
		third:     third,
		twoThirds: new(big.Int).Lsh(third, 1),
	}, nil
}

// Curve returns the curve the walk runs on.
func (w *Walk) Curve() *curve.Params { return w.curve }

// Generators returns P and Q.
func (w *Walk) Generators() (p, q curve.Point) { return w.p, w.q }

// Partition classifies a position by its x-coordinate.
func (w *Walk) Partition(x curve.Point) Partition {
	switch {
	case x.IsIdentity() || x.X.Cmp(w.third) < 0:
		return S1
	case x.X.Cmp(w.twoThirds) < 0:
		return S2
	default:
		return S3
	}
}

// Start returns the state c0·P with accumulators (c0 mod n, 0).
func (w *Walk) Start(c0 *big.Int) WalkState {
	c := new(big.Int).Mod(c0, w.curve.N)
	return WalkState{
		Position: w.curve.ScalarMult(w.p, c),
		C:        c,
		D:        new(big.Int),
	}
}

// Next applies one step of the walk. The input state is not modified.
func (w *Walk) Next(s WalkState) WalkState {
	n := w.curve.N
	switch w.Partition(s.Position) {
	case S1:
		c := new(big.Int).Add(s.C, big.NewInt(1))
		return WalkState{
			Position: w.curve.Add(s.Position, w.p),
			C:        c.Mod(c, n),
			D:        new(big.Int).Set(s.D),
		}
	case S2:
		c := new(big.Int).Lsh(s.C, 1)
		d := new(big.Int).Lsh(s.D, 1)
		return WalkState{
			Position: w.curve.Double(s.Position),
			C:        c.Mod(c, n),
			D:        d.Mod(d, n),
		}
	default:
		d := new(big.Int).Add(s.D, big.NewInt(1))
		return WalkState{
			Position: w.curve.Add(s.Position, w.q),
			C:        new(big.Int).Set(s.C),
			D:        d.Mod(d, n),
		}
	}
}
