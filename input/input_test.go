package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/input"
)

func TestReadLines_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("..F7.\r\n.FJ|.\n"), 0o644))

	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"..F7.", ".FJ|."}, lines)
}

func TestReadLines_KeepsInnerBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n\nb"), 0o644))

	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, lines)
}

func TestReadLines_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte("0 3 6 9 12 15\n1 3 6 10 15 21\n"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 3 6 9 12 15", "1 3 6 10 15 21"}, lines)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := input.ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, input.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLines_CorruptZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zst")
	require.NoError(t, os.WriteFile(path, []byte("definitely not zstd"), 0o644))

	_, err := input.ReadLines(path)
	assert.ErrorIs(t, err, input.ErrIO)
}

func TestLines_Empty(t *testing.T) {
	lines, err := input.Lines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}
