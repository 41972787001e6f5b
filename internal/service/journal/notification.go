package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// NotificationInput holds the parameters for a new notification.
// A nil Timestamp lets the database assign the current time.
type NotificationInput struct {
	Title     string
	Message   string
	Timestamp *time.Time
}

// Validate checks all fields and collects all errors.
func (i NotificationInput) Validate() []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Message) > 2000 {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 2000 characters"})
	}
	if i.Timestamp != nil && i.Timestamp.IsZero() {
		errs = append(errs, domain.FieldError{Field: "timestamp", Message: "must not be zero"})
	}
	return errs
}

// AddNotification stores an unread notification for the user.
func (s *Service) AddNotification(ctx context.Context, userID uuid.UUID, input NotificationInput) (*domain.Notification, error) {
	errs := append(requireUser(userID), input.Validate()...)
	if err := validation(errs); err != nil {
		return nil, err
	}

	n, err := s.notifications.Create(ctx, userID, strings.TrimSpace(input.Title), input.Message, input.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("journal.AddNotification: %w", err)
	}

	s.log.InfoContext(ctx, "notification added",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", n.ID.String()))

	return n, nil
}

// MarkNotificationAsRead sets read=true. Already-read notifications succeed
// unchanged; an unknown id returns domain.ErrNotFound.
func (s *Service) MarkNotificationAsRead(ctx context.Context, userID, id uuid.UUID) error {
	errs := requireUser(userID)
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if err := validation(errs); err != nil {
		return err
	}

	if err := s.notifications.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("journal.MarkNotificationAsRead: %w", err)
	}
	return nil
}

// MarkAllNotificationsAsRead marks every unread notification of the user as
// read and returns how many changed.
func (s *Service) MarkAllNotificationsAsRead(ctx context.Context, userID uuid.UUID) (int, error) {
	if err := validation(requireUser(userID)); err != nil {
		return 0, err
	}

	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("journal.MarkAllNotificationsAsRead: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "notifications marked read",
			slog.String("user_id", userID.String()),
			slog.Int("count", n))
	}
	return n, nil
}

// GetUnreadNotifications returns the unread notifications of the user, newest first.
func (s *Service) GetUnreadNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	if err := validation(requireUser(userID)); err != nil {
		return nil, err
	}

	list, err := s.notifications.ListUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("journal.GetUnreadNotifications: %w", err)
	}
	return list, nil
}
