// Package gearparts reads an engine schematic: a rectangular grid of
// numbers, symbols and '.' blanks.
//
// What:
//
//   - A part number is a horizontal run of digits touching a symbol in any
//     of the eight directions. Part 1 sums the part numbers.
//   - A gear is a '*' touching exactly two numbers. Part 2 sums the
//     products of each gear's two numbers.
//
// Any rune other than a digit or '.' is a symbol.
//
// Complexity: O(W×H) for parsing and for each sum.
//
// Errors:
//
//   - ErrMalformedSchematic: empty or ragged grid, or a number that does not fit int64.
package gearparts
