package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/client/calendar"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// now is replaced in tests.
var now = time.Now

// parseDay accepts YYYY-MM-DD, "today" and "yesterday". Relative names use
// the local calendar day.
func parseDay(s string) (time.Time, error) {
	local := now()
	switch strings.ToLower(s) {
	case "today", "":
	case "yesterday":
		local = local.AddDate(0, 0, -1)
	default:
		t, err := domain.ParseDay(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
		return t, nil
	}
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func (a *cliApp) calendarPage() *calendar.Page {
	return calendar.NewPage(a.session, a.client, a.log)
}

func addNotes(topLevel *cobra.Command, a *cliApp) {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note", "cal"},
		Short:   "List the days that have a note",
		Example: `
daybook notes
daybook notes show today
daybook notes write 2024-03-01 ran 5k before work
echo "long text" | daybook notes write today
`,
		Args: cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			page := a.calendarPage()
			if err := page.Load(ctx); err != nil {
				return a.pageError(page, err)
			}
			return a.render(func(w io.Writer) error { return printDates(w, page.MarkedDates()) })
		}),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [date]",
		Short: "Print the note of a day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			day, err := parseDay(firstArg(args))
			if err != nil {
				return err
			}
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			page := a.calendarPage()
			if err := page.Select(ctx, day); err != nil {
				return a.pageError(page, err)
			}
			return a.render(func(w io.Writer) error {
				fmt.Fprintln(w, bold.Sprint(domain.DayKey(day)))
				if page.Content() == "" {
					_, err := fmt.Fprintln(w, faint.Sprint("(no note)"))
					return err
				}
				_, err := fmt.Fprintln(w, page.Content())
				return err
			})
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "write <date> [text...]",
		Short: "Replace the note of a day; text is read from stdin when omitted",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if text == "" {
				if text, err = readAll(a.in); err != nil {
					return err
				}
			}
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}

			page := a.calendarPage()
			if err := page.Select(ctx, day); err != nil {
				return a.pageError(page, err)
			}
			page.SetContent(text)
			if err := page.Save(ctx); err != nil {
				return a.pageError(page, err)
			}
			_, err = fmt.Fprintf(a.out, "Saved note for %s (%d days with notes)\n", domain.DayKey(day), len(page.MarkedDates()))
			return err
		}),
	})

	topLevel.AddCommand(cmd)
}

// pageError prints the page's user-facing message and keeps the cause for
// --verbose.
func (a *cliApp) pageError(page *calendar.Page, err error) error {
	a.log.Debug("calendar", "error", err)
	if msg := page.Error(); msg != "" {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return err
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
