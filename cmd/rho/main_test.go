package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../fixtures/"

func TestRun_Full(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-out", dir, "-seed", "42", "-log-level", "disabled", fixtures + "toy_rho.txt", "full"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "FullRhoOutput.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Discrete logarithm: \nl = 5\n")
	assert.Contains(t, stdout.String(), "l = 5")
}

func TestRun_Basic(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-out", dir, "-seed", "3", "-log-level", "disabled", fixtures + "toy_rho.json", "basic"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "BasicRhoOutput.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Collision:\nc = ")
	assert.NotContains(t, string(data), "Discrete logarithm")
}

func TestRun_ECDH(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-out", dir, "-workers", "2", "-seed", "7", fixtures + "ecdh.txt", "ecdh"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "plaintext.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Meet me at the old mill at midnight.", string(data))
	assert.Contains(t, stdout.String(), "dA = 271828")
	assert.Contains(t, stderr.String(), "discrete logarithm recovered")
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"one arg", []string{fixtures + "toy_rho.txt"}},
		{"bad mode", []string{fixtures + "toy_rho.txt", "fast"}},
		{"bad flag", []string{"-nope", fixtures + "toy_rho.txt", "full"}},
		{"bad log level", []string{"-log-level", "loud", fixtures + "toy_rho.txt", "full"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, exitUsage, run(tt.args, &stdout, &stderr))
		})
	}
}

func TestRun_Failures(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-out", t.TempDir(), fixtures + "ecdh.txt", "full"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "missing field")

	stderr.Reset()
	code = run([]string{"-out", t.TempDir(), fixtures + "missing.txt", "basic"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)

	stderr.Reset()
	code = run([]string{"-out", t.TempDir(), "-max-steps", "1", "-max-attempts", "2", "-seed", "1", fixtures + "ecdh.txt", "ecdh"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "retry budget exceeded")
}
