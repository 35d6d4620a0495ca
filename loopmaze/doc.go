// Package loopmaze analyses a grid of pipe tiles containing one closed loop
// that passes through a single start tile.
//
// What:
//
//   - Parse turns text rows over the alphabet |-LJ7F.S into a Maze.
//   - Walks follows the pipe from the start tile in every direction that
//     links back to it and reports which walks close.
//   - Commit marks the tiles of a closing walk as the main loop and resolves
//     the pipe shape hidden under the start tile.
//   - Enclosed counts tiles strictly inside the loop with a scanline parity
//     rule; EnclosedFloodFill reaches the same count by flood-filling a 3×
//     rendering of the loop (see gridgraph).
//   - Solve ties the steps together and returns the farthest loop distance
//     from the start together with the enclosed tile count.
//
// Tiles:
//
//	|  north-south      L  north-east bend     7  south-west bend
//	-  east-west        J  north-west bend     F  south-east bend
//	.  ground           S  start (shape inferred from the loop)
//
// Precondition:
//
//	The loop reachable from S is a single simple cycle with exactly two
//	directions leading into it from S. Pipes that touch S but do not close
//	are reported as non-closing walks and ignored.
//
// Complexity (N = W×H):
//
//   - Parse:             O(N)
//   - Walks:             O(N) per candidate, at most 4 candidates
//   - Enclosed:          O(N)
//   - EnclosedFloodFill: O(9N)
//
// Errors:
//
//   - ErrMalformedInput     ragged rows, empty grid or unknown glyph.
//   - ErrNoStartTile        no S in the grid.
//   - ErrMultipleStartTiles more than one S.
//   - ErrNoLoop             no walk from S returns to S.
//   - ErrNotClosed, ErrNotCommitted, ErrAlreadyCommitted for misuse of
//     Commit and the enclosure queries.
package loopmaze
