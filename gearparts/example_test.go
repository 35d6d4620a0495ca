package gearparts_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/gearparts"
)

// ExampleSchematic_PartSum sums the numbers that touch a symbol.
func ExampleSchematic_PartSum() {
	s, err := gearparts.Parse([]string{
		"12..7",
		"..*..",
		"3..40",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.PartSum(), s.GearRatioSum())
	// Output:
	// 52 480
}
