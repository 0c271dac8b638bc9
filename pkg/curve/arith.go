package curve

import (
	"fmt"
	"math/big"
)

// Neg returns -pt, i.e. (x, -y mod p).
func (c *Params) Neg(pt Point) Point {
	if pt.IsIdentity() {
		return Identity()
	}
	ny := new(big.Int).Neg(pt.Y)
	ny.Mod(ny, c.P)
	return Point{X: new(big.Int).Set(pt.X), Y: ny}
}

// Add returns p1 + p2.
func (c *Params) Add(p1, p2 Point) Point {
	if p1.IsIdentity() {
		return copyPoint(p2)
	}
	if p2.IsIdentity() {
		return copyPoint(p1)
	}
	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) == 0 {
			return c.Double(p1)
		}
		// Same x, different y: p2 = -p1.
		return Identity()
	}

	// λ = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(p2.Y, p1.Y)
	den := new(big.Int).Sub(p2.X, p1.X)
	lambda := num.Mul(num, c.mustInverse(den))
	lambda.Mod(lambda, c.P)

	return c.chord(lambda, p1, p2.X)
}

// Double returns 2·pt.
func (c *Params) Double(pt Point) Point {
	if pt.IsIdentity() || pt.Y.Sign() == 0 {
		return Identity()
	}

	// λ = (3x² + a) / 2y
	num := new(big.Int).Mul(pt.X, pt.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.A)
	den := new(big.Int).Lsh(pt.Y, 1)
	lambda := num.Mul(num, c.mustInverse(den))
	lambda.Mod(lambda, c.P)

	return c.chord(lambda, pt, pt.X)
}

// chord finishes an addition given the slope λ through p1 and a second point
// with x-coordinate x2: x3 = λ² - x1 - x2, y3 = λ(x1 - x3) - y1.
func (c *Params) chord(lambda *big.Int, p1 Point, x2 *big.Int) Point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.X)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(p1.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.Y)
	y3.Mod(y3, c.P)

	return Point{X: x3, Y: y3}
}

// ScalarMult returns k·pt using double-and-add over the bits of k, least
// significant bit first. When the base point order n is set, k is first
// reduced into [0, n).
func (c *Params) ScalarMult(pt Point, k *big.Int) Point {
	scalar := new(big.Int).Set(k)
	if c.N != nil && c.N.Sign() > 0 {
		scalar.Mod(scalar, c.N)
	}
	return c.doubleAndAdd(pt, scalar)
}

// Annihilates reports whether k·pt is the identity, computing k·pt without
// reducing k modulo n. Use it to check that n really is the order of a point.
func (c *Params) Annihilates(k *big.Int, pt Point) bool {
	return c.doubleAndAdd(pt, k).IsIdentity()
}

func (c *Params) doubleAndAdd(pt Point, k *big.Int) Point {
	scalar := k
	if scalar.Sign() < 0 {
		scalar = new(big.Int).Neg(k)
		pt = c.Neg(pt)
	}

	result := Identity()
	addend := copyPoint(pt)
	for i, bits := 0, scalar.BitLen(); i < bits; i++ {
		if scalar.Bit(i) == 1 {
			result = c.Add(result, addend)
		}
		if i+1 < bits {
			addend = c.Double(addend)
		}
	}
	return result
}

// mustInverse returns v⁻¹ mod p and panics with ErrArithmeticSingularity when
// v ≡ 0. Callers guarantee a non-zero denominator.
func (c *Params) mustInverse(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, c.P)
	if r.Sign() == 0 {
		panic(fmt.Errorf("%w (mod %s)", ErrArithmeticSingularity, c.P))
	}
	inv := r.ModInverse(r, c.P)
	if inv == nil {
		panic(fmt.Errorf("%w: %s has no inverse mod %s", ErrArithmeticSingularity, v, c.P))
	}
	return inv
}

func copyPoint(pt Point) Point {
	if pt.IsIdentity() {
		return Identity()
	}
	return NewPoint(pt.X, pt.Y)
}
