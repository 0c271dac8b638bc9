// Package curve implements affine point arithmetic on short Weierstrass
// curves y² = x³ + ax + b over a prime field F_p.
//
// The arithmetic works on math/big integers and is intended for the small,
// demonstration-sized curves that Pollard's rho can actually break. It is not
// constant time.
//
// # Quick Start
//
//	params := &curve.Params{
//	    P: big.NewInt(97),
//	    A: big.NewInt(2),
//	    B: big.NewInt(3),
//	    N: big.NewInt(50),
//	}
//	if err := params.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	g := curve.NewPoint(big.NewInt(0), big.NewInt(10))
//	q := params.ScalarMult(g, big.NewInt(5))
//	fmt.Println(q) // (x, y)
//
// The zero Point is the identity (point at infinity).
//
// Presets for secp256k1 and BN254 G1 are provided so the generic arithmetic
// can be checked against the decred and gnark-crypto implementations.
package curve
