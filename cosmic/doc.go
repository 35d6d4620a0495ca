// Package cosmic sums the distances between every pair of galaxies in an
// expanding universe.
//
// What:
//
//   - The image is a rectangular grid of '.' (space) and '#' (galaxy).
//   - Every row and every column without a galaxy grows to Expansion rows
//     or columns. Positions are shifted arithmetically; the grid is never
//     rebuilt.
//   - Distances are Manhattan distances; the sum covers each unordered pair once.
//
// Concurrency:
//
//	SumDistances splits the outer loop of the pair sum across Workers
//	goroutines (errgroup). Each worker reads the shared, immutable galaxy
//	list and writes only its own partial sum.
//
// Complexity (G = galaxies):
//
//   - Expand:       O(W×H + G)
//   - SumDistances: O(G²/Workers) wall time.
//
// Errors:
//
//   - ErrMalformedImage: ragged rows, empty image or a glyph other than '.' and '#'.
//   - ErrExpansion:      Expansion below 1.
package cosmic
