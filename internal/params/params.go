// Package params loads problem instances for the rho tool from parameter
// files.
package params

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
)

var (
	// ErrSyntax is returned for lines or values the grammar does not accept.
	ErrSyntax = errors.New("syntax error")

	// ErrMissingField is returned when a mode needs a field the file does not
	// define.
	ErrMissingField = errors.New("missing field")
)

// Mode selects what the tool computes.
type Mode string

const (
	ModeBasic Mode = "basic" // find a collision
	ModeFull  Mode = "full"  // find a collision and solve for l
	ModeECDH  Mode = "ecdh"  // recover dA and decrypt the ciphertext
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeBasic, ModeFull, ModeECDH:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want basic, full or ecdh)", s)
	}
}

// Field names accepted in parameter files.
const (
	FieldP          = "p"
	FieldA          = "a"
	FieldB          = "b"
	FieldN          = "n"
	FieldGenerator  = "P"
	FieldTarget     = "Q"
	FieldAlice      = "QA"
	FieldBob        = "QB"
	FieldCiphertext = "ciphertext"
	FieldCurve      = "curve"
)

var knownFields = map[string]bool{
	FieldP: true, FieldA: true, FieldB: true, FieldN: true,
	FieldGenerator: true, FieldTarget: true, FieldAlice: true, FieldBob: true,
	FieldCiphertext: true, FieldCurve: true,
}

var requiredFields = map[Mode][]string{
	ModeBasic: {FieldP, FieldA, FieldB, FieldN, FieldGenerator, FieldTarget},
	ModeFull:  {FieldP, FieldA, FieldB, FieldN, FieldGenerator, FieldTarget},
	ModeECDH:  {FieldP, FieldA, FieldB, FieldN, FieldGenerator, FieldAlice, FieldBob, FieldCiphertext},
}

// Input is a parsed problem instance.
type Input struct {
	Curve      *curve.Params
	P          curve.Point // generator
	Q          curve.Point // target of the rho modes
	QA, QB     curve.Point // public keys of the ECDH mode
	Ciphertext string      // hex

	present map[string]bool
}

// Has reports whether the file defined field, directly or through a curve
// preset.
func (in *Input) Has(field string) bool {
	return in.present[field]
}

// Validate checks that every field mode needs is present, that the curve is
// usable and that every point given lies on it.
func (in *Input) Validate(mode Mode) error {
	required, ok := requiredFields[mode]
	if !ok {
		return fmt.Errorf("unknown mode %q", mode)
	}
	var missing []string
	for _, f := range required {
		if !in.Has(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w for %s mode: %s", ErrMissingField, mode, strings.Join(missing, ", "))
	}

	if err := in.Curve.Validate(); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		pt   curve.Point
	}{
		{FieldGenerator, in.P},
		{FieldTarget, in.Q},
		{FieldAlice, in.QA},
		{FieldBob, in.QB},
	} {
		if !in.Has(f.name) {
			continue
		}
		if err := in.Curve.CheckPoint(f.pt); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// Parser reads an Input from a file.
type Parser interface {
	ParseFile(path string) (*Input, error)
}

// LoadFile parses path with the parser matching its extension (.json for
// JSON, anything else for the text format) and validates it for mode.
func LoadFile(path string, mode Mode) (*Input, error) {
	var parser Parser = &TextParser{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = &JSONParser{}
	}

	in, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(mode); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}
