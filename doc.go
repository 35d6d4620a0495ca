// Package aoc2023 collects Advent of Code 2023 puzzle solvers built on a
// small shared toolkit.
//
// The centrepiece is loopmaze (day 10): it finds the single closed pipe
// loop through a maze, reports the tile farthest from the start along the
// loop, and counts the tiles the loop encloses.
//
// Layout:
//
//	gridgraph/     rectangular rune grids: bounds, indexing, components, blank rows/columns
//	input/         puzzle inputs as ordered lines; ".zst" files are decompressed
//	puzzle/        Answer, Solver and the day Registry
//	loopmaze/      day 10, pipe maze loop and enclosure
//	trebuchet/     day 1, calibration digits
//	gearparts/     day 3, part numbers and gear ratios
//	scratchcards/  day 4, card points and copy cascade
//	almanac/       day 5, seed ranges through range maps
//	boatrace/      day 6, winning hold times
//	camelcards/    day 7, poker-style hand ranking
//	oasis/         day 9, difference-table extrapolation
//	cosmic/        day 11, expanding universe pair distances
//	cmd/aoc/       the command line: solve, run, list, render
//
// Quick example (day 10):
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
//	farthest = 4, enclosed = 1
//
//	go install github.com/katalvlaran/aoc2023/cmd/aoc@latest
package aoc2023
