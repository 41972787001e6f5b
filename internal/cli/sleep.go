package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

// parseClock turns HH:MM into that time on the current local day.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	y, m, d := now().Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

func addSleep(topLevel *cobra.Command, a *cliApp) {
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Show the sleep schedule",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			s, err := a.client.SleepSchedule(ctx)
			if err != nil {
				return err
			}
			return a.render(func(w io.Writer) error { return printSleep(w, s) })
		}),
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "set <bedtime> <wake>",
		Short:   "Set bedtime and wake time (HH:MM)",
		Example: "daybook sleep set 23:30 07:00",
		Args:    cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, args []string) error {
			bedtime, err := parseClock(args[0])
			if err != nil {
				return err
			}
			wake, err := parseClock(args[1])
			if err != nil {
				return err
			}
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			s, err := a.client.SetSleepSchedule(ctx, bedtime, wake)
			if err != nil {
				return err
			}
			return a.render(func(w io.Writer) error { return printSleep(w, s) })
		}),
	})

	topLevel.AddCommand(cmd)
}
