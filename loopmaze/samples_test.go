package loopmaze_test

// Sample mazes shared by the tests.
var (
	// squareLoop is a 3×3 loop around one ground tile.
	squareLoop = []string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	}

	// squareWithJunk is squareLoop surrounded by pipes that are not on the loop.
	squareWithJunk = []string{
		"-L|F7",
		"7S-7|",
		"L|7||",
		"-L-J|",
		"L|-JF",
	}

	// windingLoop has its start on the left edge.
	windingLoop = []string{
		"..F7.",
		".FJ|.",
		"SJ.L7",
		"|F--J",
		"LJ...",
	}

	// openPocket encloses four tiles; the middle pocket is outside.
	openPocket = []string{
		"...........",
		".S-------7.",
		".|F-----7|.",
		".||.....||.",
		".||.....||.",
		".|L-7.F-J|.",
		".|..|.|..|.",
		".L--J.L--J.",
		"...........",
	}

	// squeezedPocket reaches the middle pocket only between touching pipes.
	squeezedPocket = []string{
		"..........",
		".S------7.",
		".|F----7|.",
		".||....||.",
		".||....||.",
		".|L-7F-J|.",
		".|..||..|.",
		".L--JL--J.",
		"..........",
	}

	// eightInside encloses eight tiles and has stray pipes around the loop.
	eightInside = []string{
		".F----7F7F7F7F-7....",
		".|F--7||||||||FJ....",
		".||.FJ||||||||L7....",
		"FJL7L7LJLJ||LJ.L-7..",
		"L--J.L7...LJS7F-7L7.",
		"....F-J..F7FJ|L7L7L7",
		"....L7.F7||L7|.L7L7|",
		".....|FJLJ|FJ|F7|.LJ",
		"....FJL-7.||.||||...",
		"....L---J.LJ.LJLJ...",
	}

	// tenInside fills every non-loop tile with junk pipes; start is on row 0.
	tenInside = []string{
		"FF7FSF7F7F7F7F7F---7",
		"L|LJ||||||||||||F--J",
		"FL-7LJLJ||||||LJL-77",
		"F--JF--7||LJLJ7F7FJ-",
		"L---JF-JLJ.||-FJLJJ7",
		"|F|F-JF---7F7-L7L|7|",
		"|FFJF7L7F-JF7|JL---7",
		"7-L-JL7||F7|L7F-7F7|",
		"L.L7LFJ|||||FJL7||LJ",
		"L7JLJL-JLJLJL--JLJ.L",
	}
)

// rotations maps each glyph to its shape after a quarter turn clockwise.
var rotations = map[byte]byte{
	'|': '-', '-': '|',
	'L': 'F', 'F': '7', '7': 'J', 'J': 'L',
	'.': '.', 'S': 'S',
}

// rotateCW turns an ASCII maze a quarter turn clockwise.
func rotateCW(lines []string) []string {
	h, w := len(lines), len(lines[0])
	out := make([][]byte, w)
	for c := range out {
		out[c] = make([]byte, h)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			out[c][h-1-r] = rotations[lines[r][c]]
		}
	}
	res := make([]string, w)
	for i, row := range out {
		res[i] = string(row)
	}

	return res
}
