package puzzle

import (
	"context"
	"fmt"
)

// Answer is the pair of results a daily puzzle produces.
type Answer struct {
	Part1 int64 `yaml:"part1"`
	Part2 int64 `yaml:"part2"`
}

// String renders the answer as "part1=<n> part2=<n>".
func (a Answer) String() string {
	return fmt.Sprintf("part1=%d part2=%d", a.Part1, a.Part2)
}

// Solver computes an Answer from the ordered lines of a puzzle input.
type Solver func(ctx context.Context, lines []string) (Answer, error)

// Puzzle binds a Solver to its day number and a short name.
type Puzzle struct {
	Day   int
	Name  string
	Solve Solver
}
