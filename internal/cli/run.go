package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/input"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrExpectation is returned by run when any answer differs from the
// manifest or any run fails.
var ErrExpectation = errors.New("cli: runs did not match expectations")

func newRunCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "run <manifest.yaml>",
		Short: "Solve every run listed in a manifest",
		Long: `Loads a YAML manifest of puzzle runs, solves each in order and compares
the answers with any expectations it lists. Every run is printed before
the command fails on a mismatch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.LoadManifest(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				flags.workers = m.Workers
			}
			reg, err := flags.registry()
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range m.Runs {
				if !runOne(cmd, reg, r) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d failed", ErrExpectation, failed, len(m.Runs))
			}
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

// runOne solves r, prints the outcome and reports whether it passed.
func runOne(cmd *cobra.Command, reg *puzzle.Registry, r config.Run) bool {
	out := cmd.OutOrStdout()
	log := ctxlog.FromContext(cmd.Context()).With("day", r.Day, "input", r.Input)

	p, err := reg.Lookup(r.Day)
	if err != nil {
		return report(out, r.Day, err)
	}
	lines, err := input.ReadLines(r.Input)
	if err != nil {
		return report(out, r.Day, err)
	}
	ans, err := p.Solve(cmd.Context(), lines)
	if err != nil {
		return report(out, r.Day, err)
	}

	if msg := mismatch(ans, r.Expect); msg != "" {
		log.Warn("answer mismatch", "got", ans.String(), "detail", msg)
		fmt.Fprintf(out, "day %d: %s FAIL (%s)\n", r.Day, ans, msg)
		return false
	}
	fmt.Fprintf(out, "day %d: %s ok\n", r.Day, ans)
	return true
}

func report(out io.Writer, day int, err error) bool {
	fmt.Fprintf(out, "day %d: error: %v\n", day, err)
	return false
}

// mismatch describes how ans differs from e, or returns "" when it matches.
func mismatch(ans puzzle.Answer, e *config.Expect) string {
	if e == nil {
		return ""
	}
	var diffs []string
	if e.Part1 != nil && *e.Part1 != ans.Part1 {
		diffs = append(diffs, fmt.Sprintf("part1 want %d", *e.Part1))
	}
	if e.Part2 != nil && *e.Part2 != ans.Part2 {
		diffs = append(diffs, fmt.Sprintf("part2 want %d", *e.Part2))
	}
	return strings.Join(diffs, ", ")
}
