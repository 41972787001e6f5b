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

// SleepScheduleInput holds the bedtime and wake time to store.
type SleepScheduleInput struct {
	Bedtime  time.Time
	WakeTime time.Time
}

// SetSleepSchedule replaces the user's sleep schedule.
func (s *Service) SetSleepSchedule(ctx context.Context, userID uuid.UUID, input SleepScheduleInput) (*domain.SleepSchedule, error) {
	errs := requireUser(userID)
	if input.Bedtime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "bedtime", Message: "required"})
	}
	if input.WakeTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "wake_time", Message: "required"})
	}
	if err := validation(errs); err != nil {
		return nil, err
	}

	schedule, err := s.sleep.Upsert(ctx, userID, input.Bedtime, input.WakeTime)
	if err != nil {
		return nil, fmt.Errorf("journal.SetSleepSchedule: %w", err)
	}

	s.log.InfoContext(ctx, "sleep schedule saved",
		slog.String("user_id", userID.String()),
		slog.Duration("duration", schedule.Duration()))

	return schedule, nil
}

// GetSleepSchedule returns the user's schedule, or nil with no error when none was set.
func (s *Service) GetSleepSchedule(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error) {
	if err := validation(requireUser(userID)); err != nil {
		return nil, err
	}

	schedule, err := s.sleep.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("journal.GetSleepSchedule: %w", err)
	}
	return schedule, nil
}
