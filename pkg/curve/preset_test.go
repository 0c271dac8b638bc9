package curve

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func TestLookupPreset(t *testing.T) {
	for _, name := range PresetNames() {
		preset, err := LookupPreset(name)
		if err != nil {
			t.Fatalf("LookupPreset(%q): %v", name, err)
		}
		if err := preset.Params.Validate(); err != nil {
			t.Errorf("%s params invalid: %v", name, err)
		}
		if !preset.Params.IsOnCurve(preset.Generator) {
			t.Errorf("%s generator is not on the curve", name)
		}
		if !preset.Params.Annihilates(preset.Params.N, preset.Generator) {
			t.Errorf("%s: n·G is not the identity", name)
		}
	}

	if _, err := LookupPreset(" SECP256K1 "); err != nil {
		t.Errorf("lookup should be case-insensitive: %v", err)
	}
	if _, err := LookupPreset("p256"); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("expected ErrInvalidCurve for unknown preset, got %v", err)
	}
}

func TestSecp256k1_ScalarMultMatchesDecred(t *testing.T) {
	preset := Secp256k1()
	c, g := preset.Params, preset.Generator
	ref := secp256k1.S256()

	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(7919),
		new(big.Int).Lsh(big.NewInt(1), 200),
		new(big.Int).Sub(c.N, big.NewInt(1)),
	}

	for _, k := range scalars {
		got := c.ScalarMult(g, k)
		wantX, wantY := ref.ScalarBaseMult(k.Bytes())
		if got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
			t.Errorf("k=%s: got %s, decred gives (%s, %s)", k, got, wantX, wantY)
		}
	}
}

func TestBN254_ScalarMultMatchesGnark(t *testing.T) {
	preset := BN254()
	c, g := preset.Params, preset.Generator
	_, _, g1, _ := bn254.Generators()

	for _, k := range []int64{1, 2, 3, 1 << 40, 123456789} {
		got := c.ScalarMult(g, big.NewInt(k))

		var want bn254.G1Affine
		want.ScalarMultiplication(&g1, big.NewInt(k))
		wantX := want.X.BigInt(new(big.Int))
		wantY := want.Y.BigInt(new(big.Int))

		if got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
			t.Errorf("k=%d: got %s, gnark gives (%s, %s)", k, got, wantX, wantY)
		}
	}
}

func TestParseSEC1(t *testing.T) {
	priv := secp256k1.PrivKeyFromBytes([]byte{0x2a})
	pub := priv.PubKey()

	for _, encoded := range [][]byte{pub.SerializeCompressed(), pub.SerializeUncompressed()} {
		got, err := ParseSEC1(encoded)
		if err != nil {
			t.Fatalf("ParseSEC1: %v", err)
		}
		want := Secp256k1().Params.ScalarMult(Secp256k1().Generator, big.NewInt(0x2a))
		if !got.Equal(want) {
			t.Errorf("ParseSEC1 = %s, want %s", got, want)
		}
	}

	if _, err := ParseSEC1([]byte{0x02, 0x01}); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("expected ErrInvalidPoint, got %v", err)
	}
}
