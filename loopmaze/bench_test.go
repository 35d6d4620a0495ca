package loopmaze_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2023/loopmaze"
)

// ringMaze returns an n×n maze whose border is a single loop with S in
// the top-left corner.
func ringMaze(n int) []string {
	lines := make([]string, n)
	lines[0] = "S" + strings.Repeat("-", n-2) + "7"
	for r := 1; r < n-1; r++ {
		lines[r] = "|" + strings.Repeat(".", n-2) + "|"
	}
	lines[n-1] = "L" + strings.Repeat("-", n-2) + "J"
	return lines
}

// BenchmarkSolve_Serial measures a 500×500 ring, scanline counting.
func BenchmarkSolve_Serial(b *testing.B) {
	lines := ringMaze(500)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loopmaze.Solve(ctx, lines)
	}
}

// BenchmarkSolve_Parallel walks both candidates concurrently.
func BenchmarkSolve_Parallel(b *testing.B) {
	lines := ringMaze(500)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loopmaze.Solve(ctx, lines, loopmaze.WithParallel(true))
	}
}

// BenchmarkSolve_FloodFill measures the 3× flood-fill counter.
func BenchmarkSolve_FloodFill(b *testing.B) {
	lines := ringMaze(200)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loopmaze.Solve(ctx, lines, loopmaze.WithEnclosure(loopmaze.FloodFill))
	}
}
