package rho

import (
	"math/big"
	"testing"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func pt(x, y int64) curve.Point { return curve.NewPoint(bi(x), bi(y)) }

// toyCurve is y² = x³ + 2x + 3 over F_97 with base point (0, 10) of order 50.
func toyCurve(t *testing.T) (*curve.Params, curve.Point) {
	t.Helper()
	params := &curve.Params{Name: "toy97", P: bi(97), A: bi(2), B: bi(3), N: bi(50)}
	if err := params.Validate(); err != nil {
		t.Fatalf("toy curve rejected: %v", err)
	}
	return params, pt(0, 10)
}

// elevenCurve is y² = x³ + x + 6 over F_7, a cyclic group of prime order 11
// generated by (1, 1).
func elevenCurve(t *testing.T) (*curve.Params, curve.Point) {
	t.Helper()
	params := &curve.Params{Name: "eleven", P: bi(7), A: bi(1), B: bi(6), N: bi(11)}
	if err := params.Validate(); err != nil {
		t.Fatalf("order-11 curve rejected: %v", err)
	}
	return params, pt(1, 1)
}

// ecdhCurve is y² = x³ + x + 14 over F_1048573, a group of prime order
// 1048193 generated by (3, 368446).
func ecdhCurve(t *testing.T) (*curve.Params, curve.Point) {
	t.Helper()
	params := &curve.Params{Name: "ecdh20", P: bi(1048573), A: bi(1), B: bi(14), N: bi(1048193)}
	if err := params.Validate(); err != nil {
		t.Fatalf("ecdh curve rejected: %v", err)
	}
	return params, pt(3, 368446)
}

// stateAt builds the walk state c·P + d·Q.
func stateAt(params *curve.Params, p, q curve.Point, c, d int64) WalkState {
	pos := params.Add(params.ScalarMult(p, bi(c)), params.ScalarMult(q, bi(d)))
	return WalkState{
		Position: pos,
		C:        new(big.Int).Mod(bi(c), params.N),
		D:        new(big.Int).Mod(bi(d), params.N),
	}
}

func checkInvariant(t *testing.T, params *curve.Params, p, q curve.Point, s WalkState) {
	t.Helper()
	want := params.Add(params.ScalarMult(p, s.C), params.ScalarMult(q, s.D))
	if !s.Position.Equal(want) {
		t.Fatalf("invariant broken: position %s, but %sP + %sQ = %s", s.Position, s.C, s.D, want)
	}
}
