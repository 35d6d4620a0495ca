package trebuchet

import (
	"context"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// spelled maps each lowercase digit word to its value; index = value.
var spelled = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for v := 1; v < len(spelled); v++ {
		if strings.HasPrefix(s[i:], spelled[v]) {
			return v, true
		}
	}

	return 0, false
}

// Value returns the calibration value of line and whether it held a digit.
func Value(line string, words bool) (int, bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, words); ok {
			first = d
			break
		}
	}
	if first < 0 {
		return 0, false
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, words); ok {
			last = d
			break
		}
	}

	return first*10 + last, true
}

// Sum adds the calibration values of every line.
func Sum(ctx context.Context, lines []string, words bool) int64 {
	log := ctxlog.FromContext(ctx)
	var total int64
	for i, line := range lines {
		v, ok := Value(line, words)
		if !ok {
			log.Debug("no digit on line", "puzzle", "trebuchet", "line", i+1, "words", words)
			continue
		}
		total += int64(v)
	}

	return total
}

// Solve returns both parts: digits only, then digits and words.
func Solve(ctx context.Context, lines []string) (puzzle.Answer, error) {
	return puzzle.Answer{
		Part1: Sum(ctx, lines, false),
		Part2: Sum(ctx, lines, true),
	}, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver() puzzle.Solver {
	return Solve
}
