package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid of '#' and '.' cells.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	cells := make([][]rune, n)
	for y := 0; y < n; y++ {
		row := make([]rune, n)
		for x := 0; x < n; x++ {
			if rng.Intn(2) == 0 {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		cells[y] = row
	}
	g, err := gridgraph.NewGrid(cells, gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	member := func(r rune) bool { return r == '#' }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents(member)
	}
}
