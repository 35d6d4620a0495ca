package gridgraph

// ConnectedComponents finds all contiguous regions of cells for which
// member returns true, according to g.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order. Components are ordered by the
// row-major position of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(member func(r rune) bool) [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.Index(x, y)
			if seen[i0] || !member(g.Cells[y][x]) {
				continue
			}
			comps = append(comps, g.flood(i0, member, seen))
		}
	}

	return comps
}

// ComponentOf returns the connected component containing the cell at idx,
// in BFS order from idx, or nil if that cell is out of range or not a member.
// Only the one region is visited.
func (g *Grid) ComponentOf(idx int, member func(r rune) bool) []int {
	x, y := g.Coordinate(idx)
	if idx < 0 || !g.InBounds(x, y) || !member(g.Cells[y][x]) {
		return nil
	}

	return g.flood(idx, member, make([]bool, g.Width*g.Height))
}

// flood runs a BFS from the member cell at start, marking every reached
// cell in seen and returning them in discovery order.
func (g *Grid) flood(start int, member func(r rune) bool, seen []bool) []int {
	offsets := g.NeighborOffsets()
	queue := []int{start}
	seen[start] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) || !member(g.Cells[vy][vx]) {
				continue
			}
			if vi := g.Index(vx, vy); !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
