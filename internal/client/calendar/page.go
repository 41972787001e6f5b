// Package calendar holds the state behind the calendar view: which days
// carry a note, the selected day and the note editor.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// User-facing error messages.
const (
	MsgFetchFailed = "Failed to fetch notes"
	MsgLoadFailed  = "Failed to load note"
	MsgSaveFailed  = "Failed to save note"
)

type sessionSource interface {
	CurrentUser() *domain.User
}

type noteSource interface {
	ListNoteDates(ctx context.Context) ([]string, error)
	GetNote(ctx context.Context, date time.Time) (*domain.Note, error)
	PutNote(ctx context.Context, date time.Time, content string) (*domain.Note, error)
}

// Page is safe for concurrent use. Only the most recent Select may write
// the editor; older responses are dropped.
type Page struct {
	session sessionSource
	notes   noteSource
	log     *slog.Logger

	mu       sync.Mutex
	marked   map[string]struct{}
	selected *time.Time
	content  string
	saving   bool
	errMsg   string
	gen      uint64
}

func NewPage(session sessionSource, notes noteSource, logger *slog.Logger) *Page {
	return &Page{
		session: session,
		notes:   notes,
		log:     logger.With("page", "calendar"),
		marked:  make(map[string]struct{}),
	}
}

// Load fetches the set of days with a note. It does nothing without a user.
func (p *Page) Load(ctx context.Context) error {
	if p.session.CurrentUser() == nil {
		return nil
	}

	dates, err := p.notes.ListNoteDates(ctx)
	if err != nil {
		p.log.ErrorContext(ctx, "fetch note dates", slog.String("error", err.Error()))
		p.setError(MsgFetchFailed)
		return fmt.Errorf("calendar.Load: %w", err)
	}

	marked := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		marked[d] = struct{}{}
	}

	p.mu.Lock()
	p.marked = marked
	p.mu.Unlock()
	return nil
}

// HasNote reports whether day (YYYY-MM-DD) carries a note.
func (p *Page) HasNote(day string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.marked[day]
	return ok
}

// MarkedDates returns every day with a note in ascending order.
func (p *Page) MarkedDates() []string {
	p.mu.Lock()
	out := make([]string, 0, len(p.marked))
	for d := range p.marked {
		out = append(out, d)
	}
	p.mu.Unlock()
	slices.Sort(out)
	return out
}

// Select makes date the current day and loads its note into the editor.
func (p *Page) Select(ctx context.Context, date time.Time) error {
	p.mu.Lock()
	p.selected = &date
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	if p.session.CurrentUser() == nil {
		return nil
	}

	note, err := p.notes.GetNote(ctx, date)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return nil
	}
	if err != nil {
		p.log.ErrorContext(ctx, "load note",
			slog.String("date", domain.DayKey(date)),
			slog.String("error", err.Error()),
		)
		p.errMsg = MsgLoadFailed
		return fmt.Errorf("calendar.Select: %w", err)
	}

	p.content = ""
	if note != nil {
		p.content = note.Content
	}
	return nil
}

// SetContent replaces the editor text.
func (p *Page) SetContent(text string) {
	p.mu.Lock()
	p.content = text
	p.mu.Unlock()
}

func (p *Page) Content() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content
}

// Selected returns the selected day, if any.
func (p *Page) Selected() (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return time.Time{}, false
	}
	return *p.selected, true
}

func (p *Page) Saving() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saving
}

// Error returns the last user-facing error message, or "".
func (p *Page) Error() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Save writes the editor text for the selected day and reloads the marked
// days. It does nothing without a user or a selected day.
func (p *Page) Save(ctx context.Context) error {
	p.mu.Lock()
	if p.selected == nil || p.session.CurrentUser() == nil {
		p.mu.Unlock()
		return nil
	}
	date := *p.selected
	content := p.content
	p.errMsg = ""
	p.saving = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.saving = false
		p.mu.Unlock()
	}()

	if _, err := p.notes.PutNote(ctx, date, content); err != nil {
		p.log.ErrorContext(ctx, "save note",
			slog.String("date", domain.DayKey(date)),
			slog.String("error", err.Error()),
		)
		p.setError(MsgSaveFailed)
		return fmt.Errorf("calendar.Save: %w", err)
	}

	return p.Load(ctx)
}

func (p *Page) setError(msg string) {
	p.mu.Lock()
	p.errMsg = msg
	p.mu.Unlock()
}
