package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	missionService "github.com/couplewheel/couplewheel/internal/services/mission"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "Inspect and manage daily/weekly missions",
	}

	cmd.AddCommand(
		newMissionsListCmd(),
		newMissionsResetCmd(),
		newMissionsProgressCmd(),
		newMissionsCompleteCmd(),
	)

	return cmd
}

func newMissionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active missions and the points balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			active := app.missions.ActiveMissions(cmd.Context())
			if len(active) == 0 {
				fmt.Fprintln(out, "no active missions - try 'wheel missions reset daily'")
			}
			for _, m := range active {
				status := fmt.Sprintf("%d/%d", m.Progress, m.Requirement)
				if m.Completed {
					status = "done"
				}
				fmt.Fprintf(out, "[%s] %s - %s (%s, reward %d, x%.1f)\n    id: %s\n",
					m.Type, m.Title, m.Description, status, m.Reward, m.Multiplier, m.ID)
			}

			snapshot := app.missions.Snapshot(cmd.Context())
			fmt.Fprintf(out, "points balance: %d\n", snapshot.Points)
			return nil
		},
	}
}

func newMissionsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <daily|weekly>",
		Short: "Replace missions of one type with fresh templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			switch args[0] {
			case "daily":
				return app.missions.ResetDailyMissions(cmd.Context())
			case "weekly":
				return app.missions.ResetWeeklyMissions(cmd.Context())
			default:
				return fmt.Errorf("unknown mission type %q", args[0])
			}
		},
	}
}

func newMissionsProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <delta>",
		Short: "Add progress to a mission",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta must be a number: %w", err)
			}

			return app.missions.UpdateProgress(cmd.Context(), &missionService.UpdateProgressInput{
				MissionID: args[0],
				Delta:     delta,
			})
		},
	}
}

func newMissionsCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Claim a mission's reward onto the points balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			return app.missions.CompleteMission(cmd.Context(), &missionService.CompleteMissionInput{
				MissionID: args[0],
			})
		},
	}
}
