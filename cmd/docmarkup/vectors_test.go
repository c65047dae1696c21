package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docmarkup/stringtest"
)

func TestVectorsCommand(t *testing.T) {
	t.Parallel()

	got, err := execute(t, "", "vectors", filepath.Join("..", "..", "vectors", "testdata", "test-vectors.yaml"))
	require.NoError(t, err)
	assert.Contains(t, got, " 0 failed\n")
	assert.NotContains(t, got, "FAIL")
}

func TestVectorsCommandUpdate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(stringtest.Input(`
		test_vectors:
		  bold:
		    source: B(x)
		    md: stale
	`)), 0o600))

	got, err := execute(t, "", "vectors", path)
	require.ErrorIs(t, err, ErrVectorsFailed)
	assert.Contains(t, got, "FAIL bold/md")
	assert.Contains(t, got, "0 passed, 1 failed\n")

	_, err = execute(t, "", "vectors", "--update", path)
	require.NoError(t, err)

	got, err = execute(t, "", "vectors", path)
	require.NoError(t, err)
	assert.Equal(t, "6 passed, 0 failed\n", got)
}

func TestVectorsCommandInvalid(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "vectors")
	require.Error(t, err)

	_, err = execute(t, "", "vectors", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
