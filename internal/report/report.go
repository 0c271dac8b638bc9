// Package report writes the result files of the rho tool.
package report

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
	"github.com/mahdiidarabi/ecdlp-rho/pkg/rho"
)

// File names written to the output directory.
const (
	BasicFile     = "BasicRhoOutput.txt"
	FullFile      = "FullRhoOutput.txt"
	PlaintextFile = "plaintext.txt"
)

// Rho is the content of a basic or full result file. Log is nil for the
// basic mode.
type Rho struct {
	Curve     *curve.Params
	P, Q      curve.Point
	Collision *rho.Collision
	Log       *big.Int
}

// FileName returns the file the report belongs in.
func (r Rho) FileName() string {
	if r.Log != nil {
		return FullFile
	}
	return BasicFile
}

// WriteRho writes the report:
//
//	Input:
//	p = 97
//	...
//	Q = (88, 56)
//
//	Collision:
//	c = 9
//	d = 2
//	c' = 9
//	d' = 12
//
//	Discrete logarithm:
//	l = 15
func WriteRho(w io.Writer, r Rho) error {
	if r.Curve == nil || r.Collision == nil {
		return fmt.Errorf("report: curve and collision are required")
	}
	c, d, cPrime, dPrime := r.Collision.Tuple()

	var b strings.Builder
	b.WriteString("Input:")
	for _, kv := range [][2]string{
		{"p", r.Curve.P.String()},
		{"a", r.Curve.A.String()},
		{"b", r.Curve.B.String()},
		{"P", r.P.String()},
		{"n", r.Curve.N.String()},
		{"Q", r.Q.String()},
	} {
		fmt.Fprintf(&b, "\n%s = %s", kv[0], kv[1])
	}

	b.WriteString("\n\nCollision:")
	for _, kv := range [][2]string{
		{"c", c.String()},
		{"d", d.String()},
		{"c'", cPrime.String()},
		{"d'", dPrime.String()},
	} {
		fmt.Fprintf(&b, "\n%s = %s", kv[0], kv[1])
	}

	if r.Log != nil {
		fmt.Fprintf(&b, "\n\nDiscrete logarithm: \nl = %s", r.Log)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRhoFile writes the report into dir and returns the path written.
func WriteRhoFile(dir string, r Rho) (string, error) {
	path := filepath.Join(dir, r.FileName())
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteRho(file, r); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// WritePlaintextFile writes the decrypted message into dir as UTF-8 and
// returns the path written.
func WritePlaintextFile(dir, plaintext string) (string, error) {
	path := filepath.Join(dir, PlaintextFile)
	if err := os.WriteFile(path, []byte(plaintext), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
