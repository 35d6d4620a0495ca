package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/input"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/loopmaze"
	"github.com/katalvlaran/aoc2023/puzzle"
)

var (
	pipeSample = []string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	}
	galaxySample = []string{
		"...#......",
		".......#..",
		"#.........",
		"..........",
		"......#...",
		".#........",
		".........#",
		"..........",
		".......#..",
		"#...#.....",
	}
)

// execute runs a fresh command tree and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestList(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		" 1  Trebuchet?!",
		" 3  Gear Ratios",
		" 4  Scratchcards",
		" 5  If You Give A Seed A Fertilizer",
		" 6  Wait For It",
		" 7  Camel Cards",
		" 9  Mirage Maintenance",
		"10  Pipe Maze",
		"11  Cosmic Expansion",
	}, "\n")+"\n", out)
}

func TestSolve_PipeMaze(t *testing.T) {
	t.Parallel()

	path := writeInput(t, t.TempDir(), "10.txt", pipeSample)
	for _, extra := range [][]string{
		nil,
		{"--enclosure", "flood"},
		{"--parallel"},
	} {
		args := append([]string{"solve", "10", path}, extra...)
		out, _, err := execute(t, args...)
		require.NoErrorf(t, err, "args %v", extra)
		assert.Equalf(t, "day 10 (Pipe Maze): part1=4 part2=1\n", out, "args %v", extra)
	}
}

func TestSolve_CompressedGalaxies(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "11.txt.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(strings.Join(galaxySample, "\n")))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	out, _, err := execute(t, "solve", "11", path, "--expansion", "10", "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, "day 11 (Cosmic Expansion): part1=374 part2=1030\n", out)
}

func TestSolve_CamelCards(t *testing.T) {
	t.Parallel()

	path := writeInput(t, t.TempDir(), "7.txt", []string{
		"32T3K 765",
		"T55J5 684",
		"KK677 28",
		"KTJJT 220",
		"QQQJA 483",
	})
	out, _, err := execute(t, "solve", "7", path)
	require.NoError(t, err)
	assert.Equal(t, "day 7 (Camel Cards): part1=6440 part2=5905\n", out)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	path := writeInput(t, t.TempDir(), "10.txt", pipeSample)

	_, _, err := execute(t, "solve", "ten", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid day "ten"`)

	_, _, err = execute(t, "solve", "2", path)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, _, err = execute(t, "solve", "10", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, input.ErrIO)

	_, _, err = execute(t, "solve", "10", path, "--enclosure", "winding")
	assert.ErrorIs(t, err, loopmaze.ErrUnknownEnclosure)

	bad := writeInput(t, t.TempDir(), "bad.txt", []string{"S-", "|"})
	_, _, err = execute(t, "solve", "10", bad)
	assert.ErrorIs(t, err, loopmaze.ErrMalformedInput)

	_, _, err = execute(t, "solve", "10")
	assert.Error(t, err)
}

func TestSolve_DebugLogging(t *testing.T) {
	t.Parallel()

	path := writeInput(t, t.TempDir(), "10.txt", pipeSample)
	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "solve", "10", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"puzzle":"loopmaze"`)
	assert.Contains(t, stderr, `"msg":"loop committed"`)

	_, stderr, err = execute(t, "solve", "10", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "10.txt", pipeSample)
	writeInput(t, dir, "11.txt", galaxySample)
	manifest := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`workers: 2
runs:
  - day: 10
    input: 10.txt
    expect: { part1: 4, part2: 1 }
  - day: 11
    input: 11.txt
    expect: { part1: 374 }
`), 0o644))

	out, _, err := execute(t, "run", manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "day 10: part1=4 part2=1 ok\n")
	assert.Contains(t, out, "day 11: part1=374 part2=82000210 ok\n")
}

func TestRun_MismatchReportsAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "10.txt", pipeSample)
	manifest := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`runs:
  - day: 10
    input: 10.txt
    expect: { part1: 5, part2: 1 }
  - day: 2
    input: 10.txt
  - day: 10
    input: 10.txt
`), 0o644))

	out, _, err := execute(t, "run", manifest)
	assert.ErrorIs(t, err, ErrExpectation)
	assert.Contains(t, err.Error(), "2 of 3 failed")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "day 10: part1=4 part2=1 FAIL (part1 want 5)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "day 2: error: "))
	assert.Equal(t, "day 10: part1=4 part2=1 ok", lines[2])
}

func TestRun_InvalidManifest(t *testing.T) {
	t.Parallel()

	manifest := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("runs: []\n"), 0o644))

	_, _, err := execute(t, "run", manifest)
	var ve config.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "runs", ve.Field)
}

func TestRender(t *testing.T) {
	t.Parallel()

	path := writeInput(t, t.TempDir(), "10.txt", pipeSample)
	out, _, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		".....",
		".╔═╗.",
		".║I║.",
		".╚═╝.",
		".....",
		"loop=8 farthest=4 enclosed=1",
	}, "\n")+"\n", out)
}

func TestMismatch(t *testing.T) {
	t.Parallel()

	one, two := int64(1), int64(2)
	ans := puzzle.Answer{Part1: 1, Part2: 3}
	assert.Empty(t, mismatch(ans, nil))
	assert.Empty(t, mismatch(ans, &config.Expect{Part1: &one}))
	assert.Equal(t, "part2 want 2", mismatch(ans, &config.Expect{Part1: &one, Part2: &two}))
	assert.Equal(t, "part1 want 2, part2 want 1", mismatch(ans, &config.Expect{Part1: &two, Part2: &one}))
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tests := []struct {
		level   string
		debugOn bool
		infoOn  bool
		warnOn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"bogus", false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			l := newLogger(tt.level, "text", &bytes.Buffer{})
			h := l.Handler()
			assert.Equal(t, tt.debugOn, h.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.infoOn, h.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.warnOn, h.Enabled(ctx, slog.LevelWarn))
			assert.True(t, h.Enabled(ctx, slog.LevelError))
		})
	}
}
