package report

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdlp-rho/pkg/curve"
	"github.com/mahdiidarabi/ecdlp-rho/pkg/rho"
)

func toyReport(log *big.Int) Rho {
	params := &curve.Params{P: big.NewInt(97), A: big.NewInt(2), B: big.NewInt(3), N: big.NewInt(50)}
	return Rho{
		Curve: params,
		P:     curve.NewPoint(big.NewInt(0), big.NewInt(10)),
		Q:     curve.NewPoint(big.NewInt(53), big.NewInt(24)),
		Collision: &rho.Collision{
			Tortoise: rho.WalkState{C: big.NewInt(9), D: big.NewInt(2)},
			Hare:     rho.WalkState{C: big.NewInt(9), D: big.NewInt(12)},
		},
		Log: log,
	}
}

const basicWant = `Input:
p = 97
a = 2
b = 3
P = (0, 10)
n = 50
Q = (53, 24)

Collision:
c = 9
d = 2
c' = 9
d' = 12
`

func TestWriteRho_Basic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRho(&buf, toyReport(nil)))
	assert.Equal(t, basicWant, buf.String())
	assert.Equal(t, BasicFile, toyReport(nil).FileName())
}

func TestWriteRho_Full(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRho(&buf, toyReport(big.NewInt(15))))

	want := basicWant + "\nDiscrete logarithm: \nl = 15\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRho_ZeroLogIsFull(t *testing.T) {
	r := toyReport(big.NewInt(0))
	r.Q = curve.Identity()
	assert.Equal(t, FullFile, r.FileName())

	var buf bytes.Buffer
	require.NoError(t, WriteRho(&buf, r))
	assert.Contains(t, buf.String(), "Q = O\n")
	assert.Contains(t, buf.String(), "l = 0\n")
}

func TestWriteRho_MissingCollision(t *testing.T) {
	r := toyReport(nil)
	r.Collision = nil
	require.Error(t, WriteRho(&bytes.Buffer{}, r))
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteRhoFile(dir, toyReport(big.NewInt(15)))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FullFile), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "l = 15")

	path, err = WritePlaintextFile(dir, "Grüße")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Grüße", string(data))

	_, err = WriteRhoFile(filepath.Join(dir, "missing", "dir"), toyReport(nil))
	require.Error(t, err)
}
