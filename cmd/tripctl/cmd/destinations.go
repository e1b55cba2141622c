package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List the destinations of saved trips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dests, err := client.ListDestinations(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(dests) == 0 {
			color.New(color.Faint).Fprintln(out, "No destinations yet.")
			return nil
		}
		bullet := color.New(color.FgCyan).Sprint("•")
		for _, d := range dests {
			fmt.Fprintf(out, "%s %s\n", bullet, d)
		}
		return nil
	},
}
