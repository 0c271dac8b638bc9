package curve

import (
	"fmt"
	"math/big"
)

// Point is an affine point on a curve. The zero value is the identity
// element (the point at infinity).
type Point struct {
	X *big.Int // nil for the identity
	Y *big.Int // nil for the identity
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.X == nil || p.Y == nil
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String formats p as "(x, y)", or "O" for the identity.
func (p Point) String() string {
	if p.IsIdentity() {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.X.Text(10), p.Y.Text(10))
}
