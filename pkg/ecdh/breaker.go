package ecdh

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
	"github.com/mahdiidarabi/ecdlp-rho/pkg/rho"
)

// ErrIdentitySecret is returned when the shared point is the identity and
// therefore has no x-coordinate to derive a key from.
var ErrIdentitySecret = errors.New("shared secret is the point at infinity")

// Decrypter turns the x-coordinate of a shared point into a key and decrypts
// a hex ciphertext with it.
type Decrypter interface {
	Decrypt(sharedX *big.Int, ciphertextHex string) (string, error)
}

// Result contains everything recovered by a successful break.
type Result struct {
	PrivateKey   *big.Int     // dA with QA = dA·P
	Collision    *rho.Collision
	SharedSecret curve.Point // S = dA·QB
	SharedX      *big.Int
	Plaintext    string
}

// Breaker recovers Alice's private key with a rho client and decrypts with
// the shared secret it implies.
type Breaker struct {
	client    *rho.Client
	decrypter Decrypter
}

// NewBreaker creates a breaker. A nil client is replaced by rho.NewClient().
func NewBreaker(client *rho.Client, decrypter Decrypter) *Breaker {
	if client == nil {
		client = rho.NewClient()
	}
	return &Breaker{client: client, decrypter: decrypter}
}

// Break recovers dA from QA = dA·P, derives S = dA·QB and decrypts
// ciphertextHex with x(S).
//
// Args:
//   - ctx: Context for cancellation.
//   - params: Curve parameters; N must be the order of P.
//   - p: Public generator.
//   - qa, qb: Alice's and Bob's public keys.
//   - ciphertextHex: Hex-encoded ciphertext.
//
// Returns:
//   - The recovered key material and plaintext. Decrypter errors are
//     returned wrapped.
func (b *Breaker) Break(ctx context.Context, params *curve.Params, p, qa, qb curve.Point, ciphertextHex string) (*Result, error) {
	if b.decrypter == nil {
		return nil, errors.New("ecdh: no decrypter configured")
	}
	if params == nil {
		return nil, fmt.Errorf("%w: missing parameters", curve.ErrInvalidCurve)
	}
	if err := params.CheckPoint(qb); err != nil {
		return nil, fmt.Errorf("public key QB: %w", err)
	}

	res, err := b.client.Solve(ctx, params, p, qa)
	if err != nil {
		return nil, fmt.Errorf("recover private key: %w", err)
	}

	shared, err := SharedSecret(params, res.Log, qb)
	if err != nil {
		return nil, err
	}

	plaintext, err := b.decrypter.Decrypt(shared.X, ciphertextHex)
	if err != nil {
		return nil, fmt.Errorf("decrypt with x(S)=%s: %w", shared.X, err)
	}

	return &Result{
		PrivateKey:   res.Log,
		Collision:    res.Collision,
		SharedSecret: shared,
		SharedX:      new(big.Int).Set(shared.X),
		Plaintext:    plaintext,
	}, nil
}

// SharedSecret returns S = d·QB, the point both parties of the exchange
// compute. An identity result is an error.
func SharedSecret(params *curve.Params, d *big.Int, qb curve.Point) (curve.Point, error) {
	s := params.ScalarMult(qb, d)
	if s.IsIdentity() {
		return curve.Point{}, fmt.Errorf("%w: d=%s, QB=%s", ErrIdentitySecret, d, qb)
	}
	return s, nil
}
