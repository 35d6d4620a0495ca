package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := defaultSolveFlags()
			reg, err := flags.registry()
			if err != nil {
				return err
			}
			for _, p := range reg.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", p.Day, p.Name)
			}
			return nil
		},
	}
}
