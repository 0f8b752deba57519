package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReferenceInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(filepath.Join("..", "..", "test", "input.txt"), &stdout, &stderr))

	assert.Equal(t, "USD->JPY\ntotal_fee: 4.500000\ntotal_received: 1619322.000000\n", stdout.String())
}

func TestRun_LeavesGlobalLevel(t *testing.T) {
	original := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(original) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(filepath.Join("..", "..", "test", "input.txt"), &stdout, &stderr))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestRun_NoRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("USD AUD 1000\n1\nUSD EUR 1.5 1.2\n"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(path, &stdout, &stderr))
	assert.Equal(t, "USD->AUD: no route\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	assert.Error(t, run(filepath.Join(dir, "missing.txt"), &stdout, &stderr))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("USD EUR\n"), 0o600))
	assert.Error(t, run(bad, &stdout, &stderr))

	invalid := filepath.Join(dir, "invalid.txt")
	require.NoError(t, os.WriteFile(invalid, []byte("USD EUR 0\n0\n"), 0o600))
	assert.ErrorContains(t, run(invalid, &stdout, &stderr), "invalid payment request")
	assert.Empty(t, stdout.String())
}
