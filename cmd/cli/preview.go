package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPreviewCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the working days and time slots a routine would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := env.cfg.Grid()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Working days: %v\n", strings.Join(grid.Days, ", "))
			fmt.Fprintf(out, "Periods per day: %v\n", len(grid.Slots))
			fmt.Fprintln(out, "Time slots:")
			for _, slot := range grid.Slots {
				fmt.Fprintf(out, "  %v\n", slot)
			}
			return nil
		},
	}
	addGridFlags(cmd)
	return cmd
}
