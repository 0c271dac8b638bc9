// Package ecdh recovers the shared secret of an elliptic curve Diffie-Hellman
// exchange over a weak curve and uses it to decrypt an intercepted message.
//
// Given the public generator P and both public keys QA = dA·P and
// QB = dB·P, the breaker recovers dA with Pollard's rho, computes the shared
// point S = dA·QB and hands x(S) to a Decrypter.
//
// # Quick Start
//
//	import (
//	    "github.com/mahdiidarabi/ecdlp-rho/internal/desecb"
//	    "github.com/mahdiidarabi/ecdlp-rho/pkg/ecdh"
//	    "github.com/mahdiidarabi/ecdlp-rho/pkg/rho"
//	)
//
//	breaker := ecdh.NewBreaker(rho.NewClient(), desecb.Cipher{})
//	result, err := breaker.Break(ctx, params, P, QA, QB, ciphertextHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Plaintext)
package ecdh
