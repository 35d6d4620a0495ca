package loopmaze

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// IsLinked reports whether the neighbour of c in direction d has an opening
// facing back toward c, and returns that neighbour. Neighbours outside the
// maze are never linked.
func (m *Maze) IsLinked(c Coord, d Direction) (Coord, bool) {
	n := c.Step(d)
	if !m.InBounds(n) {
		return Coord{}, false
	}
	if !m.At(n).Shape.Opens(d.Opposite()) {
		return Coord{}, false
	}

	return n, true
}

// NextStep decides where a walk continues after arriving at `at` heading
// `arrived`. It returns false when the tile has no exit for that heading,
// when the exit is not linked, or when the next tile was already visited.
func (m *Maze) NextStep(at Coord, arrived Direction, visited map[Coord]struct{}) (Step, bool) {
	d, ok := exit(m.At(at).Shape, arrived)
	if !ok {
		return Step{}, false
	}
	n, ok := m.IsLinked(at, d)
	if !ok {
		return Step{}, false
	}
	if _, seen := visited[n]; seen {
		return Step{}, false
	}

	return Step{Coord: n, Dir: d}, true
}

// Candidates returns the first moves from the start tile, in N, E, S, W
// order, keeping only neighbours that link back to it.
func (m *Maze) Candidates() []Step {
	var out []Step
	for _, d := range directions {
		if n, ok := m.IsLinked(m.start, d); ok {
			out = append(out, Step{Coord: n, Dir: d})
		}
	}

	return out
}

// WalkFrom follows the pipe starting with first until it reaches the start
// tile (Closed) or NextStep stops it. It does not modify the maze.
func (m *Maze) WalkFrom(first Step) Walk {
	path := []Step{first}
	visited := map[Coord]struct{}{first.Coord: {}}
	for {
		cur := path[len(path)-1]
		if m.At(cur.Coord).Shape == Start {
			return Walk{Path: path, Closed: true}
		}
		next, ok := m.NextStep(cur.Coord, cur.Dir, visited)
		if !ok {
			return Walk{Path: path}
		}
		visited[next.Coord] = struct{}{}
		path = append(path, next)
	}
}

// Walks runs WalkFrom for every candidate. With parallel set each candidate
// runs in its own goroutine; walks share nothing but the read-only maze.
// The result is indexed like Candidates().
func (m *Maze) Walks(ctx context.Context, parallel bool) ([]Walk, error) {
	cands := m.Candidates()
	walks := make([]Walk, len(cands))
	if !parallel {
		for i, c := range cands {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			walks[i] = m.WalkFrom(c)
		}
		return walks, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range cands {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			walks[i] = m.WalkFrom(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return walks, nil
}

// Commit marks every tile of a closing walk, start included, as part of the
// main loop and resolves the start tile's pipe shape from the walk's first
// and last headings. It may be called once per Maze.
func (m *Maze) Commit(w Walk) error {
	if !w.Closed || len(w.Path) == 0 {
		return ErrNotClosed
	}
	if m.committed {
		return ErrAlreadyCommitted
	}
	first, last := w.Path[0].Dir, w.Path[len(w.Path)-1].Dir
	shape, ok := shapeFor(setOf(first, last.Opposite()))
	if !ok {
		return fmt.Errorf("%w: start leaves %s and is entered heading %s", ErrNotClosed, first, last)
	}
	for _, s := range w.Path {
		m.tiles[s.Row][s.Col].Visited = true
	}
	m.startShape = shape
	m.committed = true

	return nil
}

// Committed reports whether Commit has marked a loop.
func (m *Maze) Committed() bool {
	return m.committed
}
