package oasis

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// ParseHistory reads one whitespace-separated line of integers.
func ParseHistory(line string) ([]int64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrMalformedHistory)
	}
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %w", ErrMalformedHistory, i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// Next returns the value that follows values.
// Iterative form: sum the last element of each difference row.
func Next(values []int64) int64 {
	row := slices.Clone(values)
	var next int64
	for len(row) > 0 {
		next += row[len(row)-1]
		allZero := true
		for i := 0; i < len(row)-1; i++ {
			row[i] = row[i+1] - row[i]
			if row[i] != 0 {
				allZero = false
			}
		}
		row = row[:len(row)-1]
		if allZero {
			break
		}
	}

	return next
}

// Prev returns the value that precedes values.
func Prev(values []int64) int64 {
	rev := slices.Clone(values)
	slices.Reverse(rev)
	return Next(rev)
}

// Solve sums Next (part 1) and Prev (part 2) over every line.
func Solve(_ context.Context, lines []string) (puzzle.Answer, error) {
	var ans puzzle.Answer
	for i, line := range lines {
		h, err := ParseHistory(line)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		ans.Part1 += Next(h)
		ans.Part2 += Prev(h)
	}

	return ans, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver() puzzle.Solver {
	return Solve
}
