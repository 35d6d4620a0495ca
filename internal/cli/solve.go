package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/input"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
)

func newSolveCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve <day> <input>",
		Short: "Solve one puzzle input",
		Long: `Reads the input file (".zst" files are decompressed) and prints both
parts of the answer for the given day.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			reg, err := flags.registry()
			if err != nil {
				return err
			}
			p, err := reg.Lookup(day)
			if err != nil {
				return err
			}
			lines, err := input.ReadLines(args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			start := time.Now()
			ans, err := p.Solve(ctx, lines)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
			ctxlog.FromContext(ctx).Info("solved", "day", day, "lines", len(lines), "elapsed", time.Since(start))

			fmt.Fprintf(cmd.OutOrStdout(), "day %d (%s): %s\n", p.Day, p.Name, ans)
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}
