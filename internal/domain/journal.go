package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayLayout is the ISO calendar-day format used as the note key.
const DayLayout = time.DateOnly

// DayKey truncates t to its UTC calendar day and formats it as YYYY-MM-DD.
// Two instants on the same UTC day always produce the same key.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD key into midnight UTC of that day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

// Note is the free-text note attached to one calendar day of one user.
// Identity is (UserID, Date).
type Note struct {
	UserID    uuid.UUID
	Date      string
	Content   string
	UpdatedAt time.Time
}

// DiaryEntry is an append-only journal entry.
type DiaryEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}

// SleepSchedule is the per-user bedtime and wake time. One per user.
type SleepSchedule struct {
	UserID    uuid.UUID
	Bedtime   time.Time
	WakeTime  time.Time
	UpdatedAt time.Time
}

// Duration returns the planned sleep length. A wake time at or before
// bedtime is treated as falling on the following day.
func (s SleepSchedule) Duration() time.Duration {
	d := s.WakeTime.Sub(s.Bedtime)
	for d <= 0 {
		d += 24 * time.Hour
	}
	return d
}
