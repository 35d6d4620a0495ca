// Package gridgraph treats a rectangular block of text as a grid of cells,
// enabling bounds-checked neighbour lookups, component analysis and
// row/column scans.
//
// What:
//
//   - Grid wraps a rectangular [][]rune with a chosen Connectivity.
//   - Identifies connected components of cells accepted by a membership predicate.
//   - Locates cells holding a given rune, and rows/columns made only of one rune.
//
// Why:
//
//   - Puzzle maps: pipe mazes, star charts, flood fills of open regions.
//   - Any line-oriented input whose meaning depends on 2D adjacency.
//
// Complexity:
//
//   - FromLines / NewGrid:   O(W×H), Memory: O(W×H).
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Find:                  O(W×H).
//   - BlankRows, BlankCols:  O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
