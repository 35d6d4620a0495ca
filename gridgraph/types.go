// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/aoc2023.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Grid treats a 2D rune grid as a graph. It is immutable once built.
// Width and Height define dimensions; Cells[y][x] holds the original input rune.
// neighborOffsets is precomputed for efficient adjacency lookups.
type Grid struct {
	Width, Height   int
	Cells           [][]rune
	Conn            Connectivity
	neighborOffsets [][2]int
}
