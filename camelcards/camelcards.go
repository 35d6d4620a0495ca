package camelcards

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// Kind is the type of a hand, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

const (
	handSize = 5
	joker    = 'J'

	// Card orders, weakest first.
	jackOrder  = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int64
}

// ParseHand reads "<cards> <bid>".
func ParseHand(line string) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("%w: want \"<cards> <bid>\", got %q", ErrMalformedHand, line)
	}
	cards := fields[0]
	if len(cards) != handSize {
		return Hand{}, fmt.Errorf("%w: %q has %d cards, want %d", ErrMalformedHand, cards, len(cards), handSize)
	}
	for i := 0; i < len(cards); i++ {
		if strings.IndexByte(jackOrder, cards[i]) < 0 {
			return Hand{}, fmt.Errorf("%w: unknown card %q", ErrMalformedHand, cards[i])
		}
	}
	bid, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bid: %w", ErrMalformedHand, err)
	}

	return Hand{Cards: cards, Bid: bid}, nil
}

// Kind classifies the hand. With jokers set, every J joins the largest
// group of other cards.
func (h Hand) Kind(jokers bool) Kind {
	counts := make(map[byte]int, handSize)
	wild := 0
	for i := 0; i < len(h.Cards); i++ {
		if jokers && h.Cards[i] == joker {
			wild++
			continue
		}
		counts[h.Cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	groups = append(groups, 0, 0) // all-joker hands have no groups
	top, second := groups[0]+wild, groups[1]

	switch {
	case top == 5:
		return FiveOfAKind
	case top == 4:
		return FourOfAKind
	case top == 3 && second == 2:
		return FullHouse
	case top == 3:
		return ThreeOfAKind
	case top == 2 && second == 2:
		return TwoPair
	case top == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders a before b (-1), equal (0) or after (+1) under the jack or
// joker rules.
func Compare(a, b Hand, jokers bool) int {
	if c := cmp.Compare(a.Kind(jokers), b.Kind(jokers)); c != 0 {
		return c
	}
	order := jackOrder
	if jokers {
		order = jokerOrder
	}
	for i := 0; i < handSize; i++ {
		if c := cmp.Compare(strings.IndexByte(order, a.Cards[i]), strings.IndexByte(order, b.Cards[i])); c != 0 {
			return c
		}
	}

	return 0
}

// Winnings ranks hands weakest to strongest and returns Σ bid×rank.
// The input slice is not reordered.
func Winnings(hands []Hand, jokers bool) int64 {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, func(a, b Hand) int { return Compare(a, b, jokers) })
	var total int64
	for i, h := range ranked {
		total += int64(i+1) * h.Bid
	}

	return total
}

// Solve returns total winnings with jacks (part 1) and with jokers (part 2).
// Blank lines are skipped.
func Solve(_ context.Context, lines []string) (puzzle.Answer, error) {
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := ParseHand(line)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}

	return puzzle.Answer{Part1: Winnings(hands, false), Part2: Winnings(hands, true)}, nil
}

// Solver adapts Solve to puzzle.Solver.
func Solver() puzzle.Solver {
	return Solve
}
