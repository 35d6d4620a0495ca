// Package camelcards ranks Camel Cards hands and totals their winnings.
//
// A hand is five cards from "23456789TJQKA" followed by a bid. Hands order
// first by Kind (five of a kind down to high card), then card by card from
// the left. Total winnings are Σ bid×rank, the weakest hand having rank 1.
//
// Part 1 reads J as a jack. Part 2 reads J as a joker: it counts as
// whatever card makes the strongest Kind, but is the weakest card when
// breaking ties.
//
// Errors:
//
//   - ErrMalformedHand: a line that is not "<5 cards> <bid>", or an unknown card.
package camelcards
