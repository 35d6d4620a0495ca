// Package trebuchet recovers calibration values from lines of text.
//
// A line's value is its first digit times ten plus its last digit.
// Part 1 reads only the characters 0-9; part 2 also reads the spelled
// digits one…nine, which may overlap ("eightwo" holds 8 then 2).
//
// Lines with no digit contribute zero and are logged at debug level.
package trebuchet
