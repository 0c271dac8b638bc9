package curve

import (
	"errors"
	"math/big"
	"testing"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func pt(x, y int64) Point { return NewPoint(bi(x), bi(y)) }

// toyCurve is y² = x³ + 2x + 3 over F_97. The group has 100 points; the base
// point (0, 10) has order 50.
func toyCurve(t *testing.T) *Params {
	t.Helper()
	c := &Params{Name: "toy97", P: bi(97), A: bi(2), B: bi(3), N: bi(50)}
	if err := c.Validate(); err != nil {
		t.Fatalf("toy curve rejected: %v", err)
	}
	return c
}

// toyPoints enumerates every affine point of c by brute force.
func toyPoints(c *Params) []Point {
	var out []Point
	p := c.P.Int64()
	for x := int64(0); x < p; x++ {
		for y := int64(0); y < p; y++ {
			cand := pt(x, y)
			if c.IsOnCurve(cand) {
				out = append(out, cand)
			}
		}
	}
	return out
}

func TestParams_Validate(t *testing.T) {
	cases := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"toy", Params{P: bi(97), A: bi(2), B: bi(3), N: bi(50)}, false},
		{"negative coefficients", Params{P: bi(97), A: bi(-95), B: bi(-94), N: bi(50)}, false},
		{"composite p", Params{P: bi(91), A: bi(2), B: bi(3), N: bi(50)}, true},
		{"p too small", Params{P: bi(3), A: bi(1), B: bi(1), N: bi(2)}, true},
		{"singular", Params{P: bi(11), A: bi(0), B: bi(0), N: bi(11)}, true},
		{"order one", Params{P: bi(97), A: bi(2), B: bi(3), N: bi(1)}, true},
		{"missing n", Params{P: bi(97), A: bi(2), B: bi(3)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := tc.params
			err := params.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCurve) {
					t.Fatalf("expected ErrInvalidCurve, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParams_IsOnCurve(t *testing.T) {
	c := toyCurve(t)

	if !c.IsOnCurve(pt(0, 10)) {
		t.Error("(0, 10) should be on the curve")
	}
	if c.IsOnCurve(pt(0, 11)) {
		t.Error("(0, 11) should not be on the curve")
	}
	if c.IsOnCurve(pt(97, 10)) {
		t.Error("coordinates outside [0, p) must be rejected")
	}
	if !c.IsOnCurve(Identity()) {
		t.Error("identity is on every curve")
	}

	err := c.CheckPoint(pt(1, 1))
	if !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("expected ErrInvalidPoint, got %v", err)
	}

	if got := len(toyPoints(c)); got != 99 {
		t.Errorf("expected 99 affine points, got %d", got)
	}
}

func TestPoint_EqualAndString(t *testing.T) {
	if !Identity().Equal(Point{}) {
		t.Error("zero Point must be the identity")
	}
	if pt(1, 2).Equal(Identity()) {
		t.Error("affine point equal to identity")
	}
	if !pt(3, 6).Equal(pt(3, 6)) {
		t.Error("equal points compare unequal")
	}
	if got := pt(3, 6).String(); got != "(3, 6)" {
		t.Errorf("String() = %q", got)
	}
	if got := Identity().String(); got != "O" {
		t.Errorf("identity String() = %q", got)
	}
}
