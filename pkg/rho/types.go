package rho

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

// WalkState is one point of a rho walk. The walk keeps
// Position = C·P + D·Q for its generators P and Q.
type WalkState struct {
	Position curve.Point
	C        *big.Int
	D        *big.Int
}

// String formats the state as "position = cP + dQ".
func (s WalkState) String() string {
	return fmt.Sprintf("%s = %sP + %sQ", s.Position, s.C, s.D)
}

// Collision is a pair of walk states with the same position.
type Collision struct {
	Tortoise WalkState // (c, d)
	Hare     WalkState // (c', d')
	Steps    uint64    // tortoise steps taken in the successful attempt
	Attempts int       // attempts used, including the successful one
	Seed     int64     // seed of the random source that produced the start
}

// Tuple returns (c, d, c', d').
func (c *Collision) Tuple() (cc, d, cPrime, dPrime *big.Int) {
	return c.Tortoise.C, c.Tortoise.D, c.Hare.C, c.Hare.D
}

// Result contains a recovered discrete logarithm.
type Result struct {
	Collision  *Collision
	Log        *big.Int // l in [0, n) with Q = l·P
	Candidates int      // number of lifts enumerated (gcd(d'-d, n))
}
