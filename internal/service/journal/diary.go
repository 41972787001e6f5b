package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// DiaryEntryInput holds the parameters for a new diary entry.
type DiaryEntryInput struct {
	Title   string
	Content string
}

// Validate checks all fields and collects all errors.
func (i DiaryEntryInput) Validate() []domain.FieldError {
	var errs []domain.FieldError
	if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: msgContentRequired})
	}
	return errs
}

// AddDiaryEntry appends an entry to the user's diary.
func (s *Service) AddDiaryEntry(ctx context.Context, userID uuid.UUID, input DiaryEntryInput) (*domain.DiaryEntry, error) {
	errs := append(requireUser(userID), input.Validate()...)
	if err := validation(errs); err != nil {
		return nil, err
	}

	entry, err := s.diary.Create(ctx, userID, strings.TrimSpace(input.Title), input.Content)
	if err != nil {
		return nil, fmt.Errorf("journal.AddDiaryEntry: %w", err)
	}

	s.log.InfoContext(ctx, "diary entry added",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()))

	return entry, nil
}

// GetDiaryEntries returns every diary entry of the user, newest first.
func (s *Service) GetDiaryEntries(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	if err := validation(requireUser(userID)); err != nil {
		return nil, err
	}

	entries, err := s.diary.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("journal.GetDiaryEntries: %w", err)
	}
	return entries, nil
}

// DeleteDiaryEntry removes one entry. Returns domain.ErrNotFound when absent.
func (s *Service) DeleteDiaryEntry(ctx context.Context, userID, id uuid.UUID) error {
	errs := requireUser(userID)
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if err := validation(errs); err != nil {
		return err
	}

	if err := s.diary.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("journal.DeleteDiaryEntry: %w", err)
	}

	s.log.InfoContext(ctx, "diary entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()))

	return nil
}
