package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/almanac"
	"github.com/katalvlaran/aoc2023/boatrace"
	"github.com/katalvlaran/aoc2023/camelcards"
	"github.com/katalvlaran/aoc2023/cosmic"
	"github.com/katalvlaran/aoc2023/gearparts"
	"github.com/katalvlaran/aoc2023/loopmaze"
	"github.com/katalvlaran/aoc2023/oasis"
	"github.com/katalvlaran/aoc2023/puzzle"
	"github.com/katalvlaran/aoc2023/scratchcards"
	"github.com/katalvlaran/aoc2023/trebuchet"
)

// solveFlags are the puzzle tuning flags shared by solve and run.
type solveFlags struct {
	workers   int
	parallel  bool
	enclosure string
	expansion int64
}

func defaultSolveFlags() solveFlags {
	return solveFlags{
		workers:   runtime.GOMAXPROCS(0),
		enclosure: "scanline",
		expansion: cosmic.Part2Expansion,
	}
}

func (f *solveFlags) bind(cmd *cobra.Command) {
	d := defaultSolveFlags()
	cmd.Flags().IntVar(&f.workers, "workers", d.workers, "goroutines for parallel puzzles (days 5 and 11)")
	cmd.Flags().BoolVar(&f.parallel, "parallel", d.parallel, "walk day 10 start candidates concurrently")
	cmd.Flags().StringVar(&f.enclosure, "enclosure", d.enclosure, "day 10 enclosure method: scanline or flood")
	cmd.Flags().Int64Var(&f.expansion, "expansion", d.expansion, "day 11 part 2 expansion factor")
}

// registry binds every implemented day to a solver configured from f.
func (f *solveFlags) registry() (*puzzle.Registry, error) {
	enc, err := loopmaze.ParseEnclosure(f.enclosure)
	if err != nil {
		return nil, err
	}

	return puzzle.NewRegistry().MustRegister(
		puzzle.Puzzle{Day: 1, Name: "Trebuchet?!", Solve: trebuchet.Solver()},
		puzzle.Puzzle{Day: 3, Name: "Gear Ratios", Solve: gearparts.Solver()},
		puzzle.Puzzle{Day: 4, Name: "Scratchcards", Solve: scratchcards.Solver()},
		puzzle.Puzzle{Day: 5, Name: "If You Give A Seed A Fertilizer", Solve: almanac.Solver(
			almanac.WithWorkers(f.workers),
		)},
		puzzle.Puzzle{Day: 6, Name: "Wait For It", Solve: boatrace.Solver()},
		puzzle.Puzzle{Day: 7, Name: "Camel Cards", Solve: camelcards.Solver()},
		puzzle.Puzzle{Day: 9, Name: "Mirage Maintenance", Solve: oasis.Solver()},
		puzzle.Puzzle{Day: 10, Name: "Pipe Maze", Solve: loopmaze.Solver(
			loopmaze.WithParallel(f.parallel),
			loopmaze.WithEnclosure(enc),
		)},
		puzzle.Puzzle{Day: 11, Name: "Cosmic Expansion", Solve: cosmic.Solver(
			cosmic.WithExpansion(f.expansion),
			cosmic.WithWorkers(f.workers),
		)},
	), nil
}
