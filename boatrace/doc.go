// Package boatrace counts the ways to win toy boat races.
//
// Holding the button for h milliseconds of a t millisecond race moves the
// boat h×(t−h) millimetres. A hold wins when that beats the record. Part 1
// multiplies the win counts of every race; part 2 reads each line as one
// race by ignoring the spaces between numbers.
//
// Win counts use a binary search over the rising half of the parabola,
// so part 2 is O(log t) instead of O(t).
package boatrace
