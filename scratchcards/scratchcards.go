package scratchcards

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

var cardRx = regexp.MustCompile(`^Card\s+(\d+):([\d\s]*)\|([\d\s]*)$`)

// Card is one parsed scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// ParseCard parses a single card line.
func ParseCard(line string) (Card, error) {
	m := cardRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, line)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: id: %w", ErrMalformedCard, err)
	}
	winning, err := ints(m[2])
	if err != nil {
		return Card{}, err
	}
	have, err := ints(m[3])
	if err != nil {
		return Card{}, err
	}

	return Card{ID: id, Winning: winning, Have: have}, nil
}

func ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCard, err)
		}
		out[i] = v
	}

	return out, nil
}

// Matches counts numbers on the card that are also winning numbers.
// Each held number counts once per occurrence.
func (c Card) Matches() int {
	win := make(map[int]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		win[w] = struct{}{}
	}
	n := 0
	for _, h := range c.Have {
		if _, ok := win[h]; ok {
			n++
		}
	}

	return n
}

// Points returns 2^(m-1) for m matches, or 0.
func (c Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// Cascade returns the total number of cards held after every card has
// won its copies.
func Cascade(cards []Card) int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	return total
}

// Solve parses every line and returns total points and total cards.
func Solve(_ context.Context, lines []string) (puzzle.Answer, error) {
	cards := make([]Card, 0, len(lines))
	var points int64
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		points += c.Points()
		cards = append(cards, c)
	}

	return puzzle.Answer{Part1: points, Part2: Cascade(cards)}, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver() puzzle.Solver {
	return Solve
}
