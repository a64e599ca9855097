package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the spin history and player scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snapshot := app.session.Snapshot(cmd.Context())

			if len(snapshot.History) == 0 {
				fmt.Fprintln(out, "no spins recorded yet")
			}
			for _, entry := range snapshot.History {
				fmt.Fprintf(out, "%s  %s spun %q for %d points",
					entry.Timestamp.Format("2006-01-02 15:04"), entry.Player, entry.Activity.Text, entry.PointsEarned)
				if entry.Feedback != nil {
					if entry.Feedback.IsPositive {
						fmt.Fprint(out, "  [+]")
					} else {
						fmt.Fprint(out, "  [-]")
					}
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintln(out)
			printScores(out, snapshot)
			return nil
		},
	}
}
