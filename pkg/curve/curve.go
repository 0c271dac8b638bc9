package curve

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidCurve is returned when curve parameters are unusable.
	ErrInvalidCurve = errors.New("invalid curve parameters")

	// ErrInvalidPoint is returned when affine coordinates do not satisfy the
	// curve equation or lie outside [0, p).
	ErrInvalidPoint = errors.New("point is not on the curve")

	// ErrArithmeticSingularity is the panic payload used when an inverse of
	// zero is requested. The branches in Add and Double make this unreachable
	// for points on the curve; hitting it is an internal invariant violation.
	ErrArithmeticSingularity = errors.New("modular inverse of zero")
)

// Params holds the parameters of a short Weierstrass curve
// y² = x³ + ax + b over F_p together with the order n of the designated base
// point. A validated Params is treated as immutable and shared by pointer.
type Params struct {
	Name string   // optional, e.g. "secp256k1"
	P    *big.Int // prime modulus of the field
	A    *big.Int // curve coefficient a
	B    *big.Int // curve coefficient b
	N    *big.Int // order of the base point
}

// Validate checks that p is a prime greater than 3, that the curve is
// non-singular (4a³ + 27b² ≢ 0 mod p) and that n > 1. It does not modify c,
// so a shared Params may be validated concurrently.
func (c *Params) Validate() error {
	if c.P == nil || c.A == nil || c.B == nil || c.N == nil {
		return fmt.Errorf("%w: p, a, b and n are required", ErrInvalidCurve)
	}
	if c.P.Cmp(big.NewInt(3)) <= 0 || !c.P.ProbablyPrime(20) {
		return fmt.Errorf("%w: p=%s is not a prime greater than 3", ErrInvalidCurve, c.P)
	}
	if c.N.Cmp(big.NewInt(1)) <= 0 {
		return fmt.Errorf("%w: n=%s must be greater than 1", ErrInvalidCurve, c.N)
	}
	if c.isSingular() {
		return fmt.Errorf("%w: 4a^3 + 27b^2 = 0 mod p", ErrInvalidCurve)
	}
	return nil
}

func (c *Params) isSingular() bool {
	a := new(big.Int).Mod(c.A, c.P)
	a3 := new(big.Int).Exp(a, big.NewInt(3), c.P)
	a3.Mul(a3, big.NewInt(4))
	b2 := new(big.Int).Mul(c.B, c.B)
	b2.Mul(b2, big.NewInt(27))
	a3.Add(a3, b2)
	return a3.Mod(a3, c.P).Sign() == 0
}

// evaluate returns x³ + ax + b mod p.
func (c *Params) evaluate(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Mul(r, x)
	r.Add(r, new(big.Int).Mul(c.A, x))
	r.Add(r, c.B)
	return r.Mod(r, c.P)
}

// IsOnCurve reports whether pt lies on the curve. The identity is on every
// curve.
func (c *Params) IsOnCurve(pt Point) bool {
	if pt.IsIdentity() {
		return true
	}
	if pt.X.Sign() < 0 || pt.X.Cmp(c.P) >= 0 || pt.Y.Sign() < 0 || pt.Y.Cmp(c.P) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(pt.Y, pt.Y)
	y2.Mod(y2, c.P)
	return c.evaluate(pt.X).Cmp(y2) == 0
}

// CheckPoint returns an error wrapping ErrInvalidPoint if pt is not on the
// curve.
func (c *Params) CheckPoint(pt Point) error {
	if !c.IsOnCurve(pt) {
		return fmt.Errorf("%w: %s", ErrInvalidPoint, pt)
	}
	return nil
}

// String describes the curve equation.
func (c *Params) String() string {
	name := c.Name
	if name == "" {
		name = "E"
	}
	return fmt.Sprintf("%s: y^2 = x^3 + %sx + %s over F_%s, n=%s", name, c.A, c.B, c.P, c.N)
}
