package loopmaze

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2023/input"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Trace parses lines, walks every start candidate and commits the longest
// closing walk. The returned Maze is committed, so Enclosed and Render
// reflect the loop.
//
// Behavior:
//  1. Parse and locate the single start tile.
//  2. Walk each linked first move (serially, or concurrently with WithParallel).
//  3. Ignore walks that dead-end; ErrNoLoop if none closes.
//  4. Commit the closing walk.
func Trace(ctx context.Context, lines []string, opts ...Option) (*Maze, Walk, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := ctxlog.FromContext(ctx).With("puzzle", "loopmaze")

	m, err := Parse(lines)
	if err != nil {
		return nil, Walk{}, err
	}
	log.Debug("maze parsed", "width", m.Width, "height", m.Height, "start", m.Start())

	walks, err := m.Walks(ctx, o.Parallel)
	if err != nil {
		return nil, Walk{}, err
	}
	best := -1
	for i, w := range walks {
		log.Debug("candidate walked", "dir", w.Path[0].Dir.String(), "steps", len(w.Path), "closed", w.Closed)
		if w.Closed && (best < 0 || w.Length() > walks[best].Length()) {
			best = i
		}
	}
	if best < 0 {
		return nil, Walk{}, ErrNoLoop
	}
	loop := walks[best]
	if err := m.Commit(loop); err != nil {
		return nil, Walk{}, err
	}
	log.Debug("loop committed", "length", loop.Length(), "start_shape", string(m.StartShape()))

	return m, loop, nil
}

// Solve traces the loop and counts the tiles it encloses with the chosen
// Enclosure method. A fresh Maze is built on every call, so repeated calls
// agree.
func Solve(ctx context.Context, lines []string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m, loop, err := Trace(ctx, lines, opts...)
	if err != nil {
		return Result{}, err
	}

	var enclosed int
	switch o.Enclosure {
	case ScanLine:
		enclosed, err = m.Enclosed()
	case FloodFill:
		enclosed, err = m.EnclosedFloodFill()
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownEnclosure, o.Enclosure)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Farthest: loop.Farthest(), Enclosed: enclosed}, nil
}

// SolveFile reads the maze at path and calls Solve. Read failures wrap
// input.ErrIO.
func SolveFile(ctx context.Context, path string, opts ...Option) (Result, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return Result{}, err
	}

	return Solve(ctx, lines, opts...)
}

// Solver adapts Solve to puzzle.Solver: Part1 is the farthest distance,
// Part2 the enclosed tile count.
func Solver(opts ...Option) puzzle.Solver {
	return func(ctx context.Context, lines []string) (puzzle.Answer, error) {
		res, err := Solve(ctx, lines, opts...)
		if err != nil {
			return puzzle.Answer{}, err
		}
		return puzzle.Answer{Part1: int64(res.Farthest), Part2: int64(res.Enclosed)}, nil
	}
}
