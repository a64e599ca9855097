package root

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couplewheel/couplewheel/internal/common/sched"
	"github.com/couplewheel/couplewheel/internal/models"
	sessionService "github.com/couplewheel/couplewheel/internal/services/session"
	"github.com/couplewheel/couplewheel/internal/services/turn"
	"github.com/couplewheel/couplewheel/internal/spin"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.logger.Sync() //nolint:errcheck

			out := cmd.OutOrStdout()
			presenter := &consolePresenter{out: out}

			controller, err := turn.New(&turn.Config{
				Session:       app.session,
				Picker:        spin.New(&spin.Config{}),
				Scheduler:     sched.New(),
				Presenter:     presenter,
				Logger:        app.logger,
				SettleDelay:   getEnvDuration("WHEEL_SPIN_SETTLE_MS", turn.DefaultSettleDelay),
				FeedbackDelay: getEnvDuration("WHEEL_FEEDBACK_DELAY_MS", turn.DefaultFeedbackDelay),
			})
			if err != nil {
				return err
			}
			defer controller.Close()

			fmt.Fprintln(out, "Couple's Wheel - type 'help' for commands")
			presenter.PhaseChanged(turn.PhaseRoleSelect)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				fields := strings.Fields(line)
				command := strings.ToLower(fields[0])

				var result turn.Result
				switch command {
				case "quit", "exit":
					return nil
				case "help":
					printPlayHelp(out)
					continue
				case "master":
					result = controller.ChooseRole(models.RoleMaster)
				case "sub":
					result = controller.ChooseRole(models.RoleSub)
				case "name":
					result = controller.SubmitName(ctx, strings.TrimSpace(strings.TrimPrefix(line, fields[0])))
				case "spin":
					result = controller.Spin(ctx)
				case "keep":
					result = controller.Keep(ctx)
				case "pass":
					result = controller.Pass(ctx)
				case "good":
					result = controller.GiveFeedback(ctx, true)
				case "bad":
					result = controller.GiveFeedback(ctx, false)
				case "add":
					if err := addCustomActivity(cmd, app.session, fields[1:]); err != nil {
						fmt.Fprintln(out, "add failed:", err)
					}
					continue
				case "scores":
					printScores(out, app.session.Snapshot(ctx))
					continue
				case "reset":
					result = controller.Reset()
				default:
					fmt.Fprintln(out, "unknown command; type 'help'")
					continue
				}

				if !result.Accepted {
					fmt.Fprintf(out, "ignored (%s)\n", result.Reason)
				}
			}

			return scanner.Err()
		},
	}

	return cmd
}

// addCustomActivity handles "add <master|sub> <minutes> <text...>"
func addCustomActivity(cmd *cobra.Command, store sessionService.Service, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: add <master|sub> <minutes> <text>")
	}

	role := models.Role(args[0])
	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("minutes must be a number: %w", err)
	}

	out, err := store.AddActivity(cmd.Context(), &sessionService.AddActivityInput{
		Role: role,
		Activity: models.Activity{
			Text:     strings.Join(args[2:], " "),
			Duration: minutes,
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "added %s activity worth %d points\n", out.Activity.Type, out.Activity.Points)
	return nil
}

func printScores(out io.Writer, snapshot *models.SessionSnapshot) {
	if len(snapshot.PlayerOrder) == 0 {
		fmt.Fprintln(out, "no players registered yet")
		return
	}
	for _, name := range snapshot.PlayerOrder {
		player := snapshot.Players[name]
		if player == nil {
			continue
		}
		marker := " "
		if name == snapshot.CurrentPlayer {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s (%s): %d points\n", marker, player.Name, player.Role, player.Score)
	}
}

func printPlayHelp(out io.Writer) {
	fmt.Fprintln(out, `commands:
  master | sub        choose a role
  name <name>         register and take the wheel
  spin                spin the wheel
  keep | pass         bank or forfeit the points on offer
  good | bad          give feedback on the last activity
  add <role> <m> <t>  add a custom activity (minutes, text)
  scores              show player scores
  reset               back to role selection
  quit                leave the game`)
}

// consolePresenter renders controller trigger points as plain text
type consolePresenter struct {
	out io.Writer
}

func (p *consolePresenter) PhaseChanged(phase turn.Phase) {
	switch phase {
	case turn.PhaseRoleSelect:
		fmt.Fprintln(p.out, "pick a role: master or sub")
	case turn.PhaseNameEntry:
		fmt.Fprintln(p.out, "enter your name: name <name>")
	case turn.PhaseWheelReady:
		fmt.Fprintln(p.out, "wheel ready - type 'spin'")
	case turn.PhaseDeciding:
		fmt.Fprintln(p.out, "keep or pass?")
	case turn.PhaseFeedback:
		fmt.Fprintln(p.out, "how was it? good or bad")
	}
}

func (p *consolePresenter) SpinStarted() {
	fmt.Fprintln(p.out, "spinning...")
}

func (p *consolePresenter) SelectionLanded(activity models.Activity, pointsOnOffer int) {
	fmt.Fprintf(p.out, "landed on: %s (%d minutes, %d points on offer)\n", activity.Text, activity.Duration, pointsOnOffer)
}

func (p *consolePresenter) CountdownTick(secondsLeft int) {
	// Only surface the countdown occasionally to keep the console readable
	if secondsLeft <= 5 || secondsLeft%30 == 0 {
		fmt.Fprintf(p.out, "%d seconds left\n", secondsLeft)
	}
}
