package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

// Profile returns the signed-in user, or nil when the server has no profile.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out *apimodel.User
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out.Domain(), nil
}

// UpdateProfile applies patch and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, patch apimodel.ProfilePatch) (*domain.User, error) {
	var out apimodel.User
	if err := c.do(ctx, http.MethodPatch, "/api/profile", patch, &out); err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

// AvatarUpload asks for a presigned URL to PUT a profile photo to.
func (c *Client) AvatarUpload(ctx context.Context, contentType string) (*apimodel.AvatarResponse, error) {
	var out apimodel.AvatarResponse
	if err := c.do(ctx, http.MethodPost, "/api/profile/avatar", apimodel.AvatarRequest{ContentType: contentType}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------------------------------------------------------------------
// Notes
// ---------------------------------------------------------------------------

// ListNoteDates returns every day (YYYY-MM-DD) that has a note.
func (c *Client) ListNoteDates(ctx context.Context) ([]string, error) {
	var out apimodel.NoteDates
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &out); err != nil {
		return nil, err
	}
	return out.Dates, nil
}

// GetNote returns the note of the UTC day of date, or nil when there is none.
func (c *Client) GetNote(ctx context.Context, date time.Time) (*domain.Note, error) {
	var out *apimodel.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+domain.DayKey(date), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out.Domain(), nil
}

// PutNote writes content for the UTC day of date.
func (c *Client) PutNote(ctx context.Context, date time.Time, content string) (*domain.Note, error) {
	var out apimodel.Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+domain.DayKey(date), apimodel.NoteRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

// ---------------------------------------------------------------------------
// Diary
// ---------------------------------------------------------------------------

// DiaryEntries returns every diary entry, newest first.
func (c *Client) DiaryEntries(ctx context.Context) ([]domain.DiaryEntry, error) {
	var out []apimodel.DiaryEntry
	if err := c.do(ctx, http.MethodGet, "/api/diary", nil, &out); err != nil {
		return nil, err
	}
	entries := make([]domain.DiaryEntry, 0, len(out))
	for _, e := range out {
		entries = append(entries, e.Domain())
	}
	return entries, nil
}

// AddDiaryEntry appends an entry.
func (c *Client) AddDiaryEntry(ctx context.Context, title, content string) (*domain.DiaryEntry, error) {
	var out apimodel.DiaryEntry
	if err := c.do(ctx, http.MethodPost, "/api/diary", apimodel.DiaryEntryRequest{Title: title, Content: content}, &out); err != nil {
		return nil, err
	}
	e := out.Domain()
	return &e, nil
}

// DeleteDiaryEntry removes one entry.
func (c *Client) DeleteDiaryEntry(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/diary/"+id.String(), nil, nil)
}

// ---------------------------------------------------------------------------
// Sleep
// ---------------------------------------------------------------------------

// SleepSchedule returns the schedule, or nil when none was set.
func (c *Client) SleepSchedule(ctx context.Context) (*domain.SleepSchedule, error) {
	var out *apimodel.SleepSchedule
	if err := c.do(ctx, http.MethodGet, "/api/sleep", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out.Domain(), nil
}

// SetSleepSchedule replaces the schedule.
func (c *Client) SetSleepSchedule(ctx context.Context, bedtime, wakeTime time.Time) (*domain.SleepSchedule, error) {
	var out apimodel.SleepSchedule
	in := apimodel.SleepSchedule{Bedtime: bedtime, WakeTime: wakeTime}
	if err := c.do(ctx, http.MethodPut, "/api/sleep", in, &out); err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

// UnreadNotifications returns the unread notifications, newest first.
func (c *Client) UnreadNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []apimodel.Notification
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &out); err != nil {
		return nil, err
	}
	return toNotifications(out), nil
}

// AddNotification creates an unread notification. A nil ts lets the server pick the time.
func (c *Client) AddNotification(ctx context.Context, title, message string, ts *time.Time) (*domain.Notification, error) {
	var out apimodel.Notification
	in := apimodel.NotificationRequest{Title: title, Message: message, Timestamp: ts}
	if err := c.do(ctx, http.MethodPost, "/api/notifications", in, &out); err != nil {
		return nil, err
	}
	n := out.Domain()
	return &n, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/"+id.String()+"/read", nil, nil)
}

// MarkAllNotificationsRead marks every unread notification as read and
// returns how many changed.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	var out apimodel.MarkAllReadResponse
	if err := c.do(ctx, http.MethodPost, "/api/notifications/read-all", nil, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

func toNotifications(in []apimodel.Notification) []domain.Notification {
	out := make([]domain.Notification, 0, len(in))
	for _, n := range in {
		out = append(out, n.Domain())
	}
	return out
}
