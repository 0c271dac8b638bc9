package rho

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

// Candidates returns every l in [0, n) that satisfies the collision's
// congruence
//
//	(c - c') ≡ l·(d' - d)  (mod n)
//
// With g = gcd(d'-d, n) there are exactly g solutions, spaced n/g apart.
// maxCandidates bounds g (<= 0 means unbounded).
func Candidates(col *Collision, n *big.Int, maxCandidates int64) ([]*big.Int, error) {
	c, d, cPrime, dPrime := col.Tuple()

	deltaD := new(big.Int).Sub(dPrime, d)
	deltaD.Mod(deltaD, n)
	if deltaD.Sign() == 0 {
		return nil, fmt.Errorf("%w: d = d' = %s", ErrDegenerateCollision, d)
	}
	deltaC := new(big.Int).Sub(c, cPrime)
	deltaC.Mod(deltaC, n)

	g := new(big.Int).GCD(nil, nil, deltaD, n)
	if !g.IsInt64() || (maxCandidates > 0 && g.Cmp(big.NewInt(maxCandidates)) > 0) {
		return nil, fmt.Errorf("%w: gcd(d'-d, n) = %s exceeds %d", ErrTooManyCandidates, g, maxCandidates)
	}
	if new(big.Int).Mod(deltaC, g).Sign() != 0 {
		return nil, fmt.Errorf("%w: %s·l = %s (mod %s) has no solution", ErrNoVerifiedLogarithm, deltaD, deltaC, n)
	}

	// Reduce to (Δd/g)·l ≡ Δc/g (mod n/g), where Δd/g is invertible.
	m := new(big.Int).Quo(n, g)
	l0 := new(big.Int)
	if m.Cmp(big.NewInt(1)) > 0 {
		inv := new(big.Int).Quo(deltaD, g)
		if inv.ModInverse(inv, m) == nil {
			return nil, fmt.Errorf("%w: %s is not invertible mod %s", ErrNoVerifiedLogarithm, deltaD, m)
		}
		l0.Quo(deltaC, g)
		l0.Mul(l0, inv)
		l0.Mod(l0, m)
	}

	count := g.Int64()
	out := make([]*big.Int, 0, count)
	for i := int64(0); i < count; i++ {
		l := new(big.Int).Mul(big.NewInt(i), m)
		l.Add(l, l0)
		out = append(out, l.Mod(l, n))
	}
	return out, nil
}

// Solve recovers l with Q = l·P from a collision. Every candidate lift is
// checked by recomputing l·P; the first that matches is returned.
func Solve(params *curve.Params, p, q curve.Point, col *Collision, maxCandidates int64) (res *Result, err error) {
	defer catchSingularity(&err)

	candidates, err := Candidates(col, params.N, maxCandidates)
	if err != nil {
		return nil, err
	}

	for _, l := range candidates {
		if params.ScalarMult(p, l).Equal(q) {
			return &Result{
				Collision:  col,
				Log:        l,
				Candidates: len(candidates),
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: none of %d candidates satisfies l·P = Q", ErrNoVerifiedLogarithm, len(candidates))
}
