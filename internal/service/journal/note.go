package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

func validateNoteKey(userID uuid.UUID, date time.Time) []domain.FieldError {
	errs := requireUser(userID)
	if date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: msgDateRequired})
	}
	return errs
}

// AddNote writes content for the UTC calendar day of date, replacing any
// existing note for that day.
func (s *Service) AddNote(ctx context.Context, userID uuid.UUID, date time.Time, content string) (*domain.Note, error) {
	errs := validateNoteKey(userID, date)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: msgContentRequired})
	}
	if err := validation(errs); err != nil {
		return nil, err
	}

	day := domain.DayKey(date)
	note, err := s.notes.Upsert(ctx, userID, day, content)
	if err != nil {
		return nil, fmt.Errorf("journal.AddNote: %w", err)
	}

	s.log.InfoContext(ctx, "note saved",
		slog.String("user_id", userID.String()),
		slog.String("date", day))

	return note, nil
}

// GetNote returns the note for the UTC calendar day of date, or nil with no
// error when the day has no note.
func (s *Service) GetNote(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Note, error) {
	if err := validation(validateNoteKey(userID, date)); err != nil {
		return nil, err
	}

	note, err := s.notes.Get(ctx, userID, domain.DayKey(date))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("journal.GetNote: %w", err)
	}
	return note, nil
}

// ListNoteDates returns every day (YYYY-MM-DD) that has a note, oldest first.
func (s *Service) ListNoteDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if err := validation(requireUser(userID)); err != nil {
		return nil, err
	}

	days, err := s.notes.ListDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("journal.ListNoteDates: %w", err)
	}
	return days, nil
}
