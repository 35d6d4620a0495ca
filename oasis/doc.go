// Package oasis extrapolates integer histories with a difference table.
//
// Each line is a whitespace-separated sequence. Differences are taken
// repeatedly until a row is all zeros; the next value is the sum of the
// last entries of every row, and the previous value is the next value of
// the reversed sequence.
//
// Errors:
//
//   - ErrMalformedHistory: a field is not an integer, or a line is empty.
package oasis
