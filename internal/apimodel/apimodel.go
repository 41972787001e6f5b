// Package apimodel defines the JSON bodies exchanged between the REST API
// and its Go client.
package apimodel

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// FieldError is one failed field of a validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type LoginPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromUser(u *domain.User) User {
	return User{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (u User) Domain() *domain.User {
	return &domain.User{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ProfilePatch carries only the fields to change. An empty PhotoURL clears it.
type ProfilePatch struct {
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
}

type AvatarRequest struct {
	ContentType string `json:"contentType"`
}

type AvatarResponse struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ---------------------------------------------------------------------------
// Journal
// ---------------------------------------------------------------------------

type Note struct {
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromNote(n *domain.Note) *Note {
	if n == nil {
		return nil
	}
	return &Note{Date: n.Date, Content: n.Content, UpdatedAt: n.UpdatedAt}
}

func (n Note) Domain() *domain.Note {
	return &domain.Note{Date: n.Date, Content: n.Content, UpdatedAt: n.UpdatedAt}
}

type NoteRequest struct {
	Content string `json:"content"`
}

type NoteDates struct {
	Dates []string `json:"dates"`
}

type DiaryEntry struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDiaryEntry(e domain.DiaryEntry) DiaryEntry {
	return DiaryEntry{ID: e.ID, Title: e.Title, Content: e.Content, CreatedAt: e.CreatedAt}
}

func (e DiaryEntry) Domain() domain.DiaryEntry {
	return domain.DiaryEntry{ID: e.ID, Title: e.Title, Content: e.Content, CreatedAt: e.CreatedAt}
}

type DiaryEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SleepSchedule struct {
	Bedtime   time.Time `json:"bedtime"`
	WakeTime  time.Time `json:"wakeTime"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func FromSleepSchedule(s *domain.SleepSchedule) *SleepSchedule {
	if s == nil {
		return nil
	}
	return &SleepSchedule{Bedtime: s.Bedtime, WakeTime: s.WakeTime, UpdatedAt: s.UpdatedAt}
}

func (s SleepSchedule) Domain() *domain.SleepSchedule {
	return &domain.SleepSchedule{Bedtime: s.Bedtime, WakeTime: s.WakeTime, UpdatedAt: s.UpdatedAt}
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

func FromNotifications(list []domain.Notification) []Notification {
	out := make([]Notification, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}

func FromNotification(n domain.Notification) Notification {
	return Notification{ID: n.ID, Title: n.Title, Message: n.Message, Read: n.Read, Timestamp: n.Timestamp}
}

func (n Notification) Domain() domain.Notification {
	return domain.Notification{ID: n.ID, Title: n.Title, Message: n.Message, Read: n.Read, Timestamp: n.Timestamp}
}

type NotificationRequest struct {
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	// Read is accepted and ignored. New notifications are always unread.
	Read bool `json:"read,omitempty"`
}

type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

// StreamEvent is the SSE event name carrying a full unread snapshot.
const StreamEvent = "notifications"
