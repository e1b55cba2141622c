package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkordes/tripwise/backend/internal/apiclient"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Manage trips",
}

var tripInput apiclient.TripInput

var tripsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a trip",
	Example: `  tripctl trips create --title "Roman Holiday" --destination Rome \
    --start 2025-06-01 --end 2025-06-05`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		trip, err := client.CreateTrip(cmd.Context(), tripInput)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		color.New(color.FgGreen, color.Bold).Fprintf(out, "Created %q\n", trip.Title)
		fmt.Fprintf(out, "  id:          %s\n", trip.ID)
		fmt.Fprintf(out, "  destination: %s\n", trip.Destination)
		fmt.Fprintf(out, "  dates:       %s to %s (%d days)\n", trip.StartDate, trip.EndDate, trip.DurationDays)
		return nil
	},
}

func init() {
	f := tripsCreateCmd.Flags()
	f.StringVar(&tripInput.Title, "title", "", "trip title")
	f.StringVar(&tripInput.Destination, "destination", "", "destination")
	f.StringVar(&tripInput.StartDate, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&tripInput.EndDate, "end", "", "end date (YYYY-MM-DD)")
	f.StringVar(&tripInput.Notes, "notes", "", "free-form notes")
	for _, name := range []string{"title", "destination", "start", "end"} {
		_ = tripsCreateCmd.MarkFlagRequired(name)
	}
}
