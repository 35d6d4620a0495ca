// Package scratchcards scores "Card N: winners | numbers" lines.
//
// Part 1: a card with m matching numbers is worth 2^(m-1) points (0 for
// no match). Part 2: a card with m matches wins one copy of each of the
// next m cards, copies win copies in turn, and the answer is the total
// number of cards held. Copies never extend past the last card.
package scratchcards
