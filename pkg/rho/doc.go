// Package rho solves the elliptic curve discrete logarithm problem Q = l·P
// with Pollard's rho method.
//
// A walk advances a state (X, c, d) with X = c·P + d·Q through a three-way
// partition of the curve by x-coordinate. Floyd's tortoise/hare cycle
// detection finds two states with the same X, and the congruence
//
//	(c - c') ≡ l·(d' - d)  (mod n)
//
// yields l. When gcd(d'-d, n) = g > 1 the g candidate lifts are enumerated
// and each is verified against Q.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/ecdlp-rho/pkg/rho"
//
//	client := rho.NewClient()
//	result, err := client.Solve(ctx, params, P, Q)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("l = %s\n", result.Log)
//
// # Customization
//
// Every search is bounded. Config limits the attempts, the steps per attempt,
// the number of candidate lifts and the wall-clock time:
//
//	client := rho.NewClient().
//	    WithConfig(rho.Config{
//	        MaxAttempts:   16,
//	        MaxCandidates: 1 << 16,
//	        Workers:       8,
//	        Seed:          42,
//	        Timeout:       30 * time.Second,
//	    }).
//	    WithLogger(zerolog.New(os.Stderr))
//
// With Workers > 1 the client races independent walks. Implement
// SearchStrategy to plug in a different cycle finder:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Search(ctx context.Context, walk *rho.Walk) (*rho.Collision, error) {
//	    // Your custom search logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyCustomStrategy"
//	}
//
//	client := rho.NewClient().WithStrategy(&MyStrategy{})
package rho
