// Package journal holds the per-user data-access operations behind the
// calendar, diary, sleep and notification features. Every call is a plain
// request/response keyed by user ID; nothing is cached or retried.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

type noteRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, day string, content string) (*domain.Note, error)
	Get(ctx context.Context, userID uuid.UUID, day string) (*domain.Note, error)
	ListDates(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type diaryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) (*domain.DiaryEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type sleepRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (*domain.SleepSchedule, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error)
}

type notificationRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title, message string, ts *time.Time) (*domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
}

// Service implements the journal data-access operations.
type Service struct {
	log           *slog.Logger
	notes         noteRepo
	diary         diaryRepo
	sleep         sleepRepo
	notifications notificationRepo
}

// NewService creates a new journal service.
func NewService(
	logger *slog.Logger,
	notes noteRepo,
	diary diaryRepo,
	sleep sleepRepo,
	notifications notificationRepo,
) *Service {
	return &Service{
		log:           logger.With("service", "journal"),
		notes:         notes,
		diary:         diary,
		sleep:         sleep,
		notifications: notifications,
	}
}

// Validation messages shared by every operation.
const (
	msgUserIDRequired  = "User ID is required"
	msgDateRequired    = "Date is required"
	msgContentRequired = "Content is required"
)

func requireUser(userID uuid.UUID) []domain.FieldError {
	if userID == uuid.Nil {
		return []domain.FieldError{{Field: "user_id", Message: msgUserIDRequired}}
	}
	return nil
}

func validation(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
