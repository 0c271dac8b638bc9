package curve

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Preset is a named curve with its standard generator.
type Preset struct {
	Params    *Params
	Generator Point
}

var presets = map[string]func() Preset{
	"secp256k1": Secp256k1,
	"bn254":     BN254,
}

// LookupPreset returns the preset registered under name (case-insensitive).
func LookupPreset(name string) (Preset, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("%w: unknown curve preset %q (known: %s)",
			ErrInvalidCurve, name, strings.Join(PresetNames(), ", "))
	}
	return build(), nil
}

// PresetNames lists the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Secp256k1 returns the SEC2 secp256k1 curve (a = 0, b = 7) with parameters
// taken from the decred implementation.
func Secp256k1() Preset {
	cp := secp256k1.Params()
	return Preset{
		Params: &Params{
			Name: "secp256k1",
			P:    new(big.Int).Set(cp.P),
			A:    big.NewInt(0),
			B:    big.NewInt(7),
			N:    new(big.Int).Set(cp.N),
		},
		Generator: NewPoint(cp.Gx, cp.Gy),
	}
}

// BN254 returns the G1 group of the BN254 pairing curve (a = 0, b = 3) with
// parameters taken from gnark-crypto.
func BN254() Preset {
	_, _, g1, _ := bn254.Generators()
	return Preset{
		Params: &Params{
			Name: "bn254",
			P:    fp.Modulus(),
			A:    big.NewInt(0),
			B:    big.NewInt(3),
			N:    fr.Modulus(),
		},
		Generator: Point{
			X: g1.X.BigInt(new(big.Int)),
			Y: g1.Y.BigInt(new(big.Int)),
		},
	}
}

// ParseSEC1 decodes a compressed or uncompressed SEC1 encoding of a
// secp256k1 point.
func ParseSEC1(data []byte) (Point, error) {
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return Point{X: pub.X(), Y: pub.Y()}, nil
}
