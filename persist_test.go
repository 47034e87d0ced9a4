package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersist_WritesSpaceSeparatedDecimals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.fht")

	s := newStack(8)
	for _, v := range []cell{1, 2, -3} {
		require.NoError(t, s.Push(v))
	}
	require.NoError(t, persist(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 2 -3", string(data))
}

func TestPersist_EmptyStackWritesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.fht")

	require.NoError(t, persist(path, newStack(8)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
}

func TestPersist_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.fht")

	s := newStack(8)
	for _, v := range []cell{10, -20, 30} {
		require.NoError(t, s.Push(v))
	}
	require.NoError(t, persist(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed []cell
	for _, tok := range strings.Fields(string(data)) {
		n, err := strconv.Atoi(tok)
		require.NoError(t, err)
		parsed = append(parsed, cell(n))
	}
	assert.Equal(t, s.Values(), parsed)
}

func TestPersist_TruncatesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.fht")
	require.NoError(t, os.WriteFile(path, []byte("9999999 leftover data"), 0o644))

	s := newStack(4)
	require.NoError(t, s.Push(7))
	require.NoError(t, persist(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))
}
