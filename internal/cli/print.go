package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
	green = color.New(color.FgGreen)
)

func newTable(header ...any) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	if len(header) > 0 {
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = bold.Sprint(h)
		}
		tbl.AddRow(cells...)
	}
	return tbl
}

func displayName(u *domain.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

func printUser(w io.Writer, u *domain.User, unread int) error {
	tbl := newTable()
	tbl.MaxColWidth = 80
	tbl.AddRow(bold.Sprint("Name"), displayName(u))
	tbl.AddRow(bold.Sprint("Email"), u.Email)
	photo := faint.Sprint("none")
	if u.PhotoURL != nil && *u.PhotoURL != "" {
		photo = *u.PhotoURL
	}
	tbl.AddRow(bold.Sprint("Photo"), photo)
	badge := fmt.Sprint(unread)
	if unread > 0 {
		badge = color.YellowString("%d", unread)
	}
	tbl.AddRow(bold.Sprint("Unread"), badge)
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func printNotifications(w io.Writer, list []domain.Notification) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, faint.Sprint("No unread notifications"))
		return err
	}
	tbl := newTable("ID", "When", "Title", "Message")
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, n := range list {
		tbl.AddRow(n.ID.String(), n.Timestamp.Local().Format(timeLayout), n.Title, n.Message)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func printDates(w io.Writer, dates []string) error {
	if len(dates) == 0 {
		_, err := fmt.Fprintln(w, faint.Sprint("No notes yet"))
		return err
	}
	tbl := newTable("Date", "Day")
	for _, d := range dates {
		weekday := ""
		if t, err := domain.ParseDay(d); err == nil {
			weekday = t.Weekday().String()
		}
		tbl.AddRow(d, weekday)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func printDiary(w io.Writer, entries []domain.DiaryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, faint.Sprint("The diary is empty"))
		return err
	}
	tbl := newTable("Written", "Title", "ID")
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = faint.Sprint("(untitled)")
		}
		tbl.AddRow(e.CreatedAt.Local().Format(timeLayout), title, e.ID.String())
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func printSleep(w io.Writer, s *domain.SleepSchedule) error {
	if s == nil {
		_, err := fmt.Fprintln(w, faint.Sprint("No sleep schedule set"))
		return err
	}
	tbl := newTable()
	tbl.AddRow(bold.Sprint("Bedtime"), s.Bedtime.Local().Format("15:04"))
	tbl.AddRow(bold.Sprint("Wake"), s.WakeTime.Local().Format("15:04"))
	tbl.AddRow(bold.Sprint("Sleep"), formatDuration(s.Duration()))
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
