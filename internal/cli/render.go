package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/input"
	"github.com/katalvlaran/aoc2023/loopmaze"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <input>",
		Short: "Draw the day 10 loop and its enclosed tiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := input.ReadLines(args[0])
			if err != nil {
				return err
			}
			m, loop, err := loopmaze.Trace(cmd.Context(), lines)
			if err != nil {
				return err
			}
			enclosed, err := m.Enclosed()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, m.Render())
			fmt.Fprintf(out, "loop=%d farthest=%d enclosed=%d\n", loop.Length(), loop.Farthest(), enclosed)
			return nil
		},
	}
}
