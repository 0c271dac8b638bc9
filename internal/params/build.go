package params

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

// build turns raw field values into an Input. Values have no whitespace.
func build(fields map[string]string, source string) (*Input, error) {
	in := &Input{Curve: &curve.Params{}, present: map[string]bool{}}

	if name, ok := fields[FieldCurve]; ok {
		preset, err := curve.LookupPreset(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		for _, f := range []string{FieldP, FieldA, FieldB, FieldN} {
			if _, dup := fields[f]; dup {
				return nil, fmt.Errorf("%s: %w: %s conflicts with curve = %s", source, ErrSyntax, f, name)
			}
		}
		cp := *preset.Params
		in.Curve = &cp
		in.P = preset.Generator
		for _, f := range []string{FieldCurve, FieldP, FieldA, FieldB, FieldN, FieldGenerator} {
			in.present[f] = true
		}
	}

	ints := []struct {
		name string
		dst  **big.Int
	}{
		{FieldP, &in.Curve.P},
		{FieldA, &in.Curve.A},
		{FieldB, &in.Curve.B},
		{FieldN, &in.Curve.N},
	}
	for _, f := range ints {
		raw, ok := fields[f.name]
		if !ok {
			continue
		}
		v, err := parseInt(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", source, f.name, err)
		}
		*f.dst = v
		in.present[f.name] = true
	}

	sec1 := strings.EqualFold(in.Curve.Name, "secp256k1")
	points := []struct {
		name string
		dst  *curve.Point
	}{
		{FieldGenerator, &in.P},
		{FieldTarget, &in.Q},
		{FieldAlice, &in.QA},
		{FieldBob, &in.QB},
	}
	for _, f := range points {
		raw, ok := fields[f.name]
		if !ok {
			continue
		}
		pt, err := parsePoint(raw, sec1)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", source, f.name, err)
		}
		*f.dst = pt
		in.present[f.name] = true
	}

	if raw, ok := fields[FieldCiphertext]; ok {
		if raw == "" {
			return nil, fmt.Errorf("%s: %w: empty ciphertext", source, ErrSyntax)
		}
		in.Ciphertext = raw
		in.present[FieldCiphertext] = true
	}
	return in, nil
}

// parseInt accepts an optional sign followed by decimal digits or 0x and hex
// digits. Nothing else is evaluated.
func parseInt(s string) (*big.Int, error) {
	body := s
	neg := false
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		neg = body[0] == '-'
		body = body[1:]
	}
	base := 10
	if len(body) > 2 && (body[:2] == "0x" || body[:2] == "0X") {
		base = 16
		body = body[2:]
	}
	if body == "" || strings.ContainsAny(body, "+-_") {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrSyntax, s)
	}
	v, ok := new(big.Int).SetString(body, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrSyntax, s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// parsePoint accepts "(x,y)" and "O". With sec1 set it also accepts a
// compressed or uncompressed SEC1 hex encoding.
func parsePoint(s string, sec1 bool) (curve.Point, error) {
	if s == "O" {
		return curve.Identity(), nil
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		xs, ys, ok := strings.Cut(s[1:len(s)-1], ",")
		if !ok || strings.Contains(ys, ",") {
			return curve.Point{}, fmt.Errorf("%w: %q is not a point (want (x,y))", ErrSyntax, s)
		}
		x, err := parseInt(xs)
		if err != nil {
			return curve.Point{}, err
		}
		y, err := parseInt(ys)
		if err != nil {
			return curve.Point{}, err
		}
		return curve.NewPoint(x, y), nil
	}
	if sec1 {
		data, err := hex.DecodeString(s)
		if err != nil {
			return curve.Point{}, fmt.Errorf("%w: %q is neither (x,y) nor SEC1 hex", ErrSyntax, s)
		}
		return curve.ParseSEC1(data)
	}
	return curve.Point{}, fmt.Errorf("%w: %q is not a point (want (x,y) or O)", ErrSyntax, s)
}
