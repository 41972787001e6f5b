package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for a user. Read only ever moves
// from false to true.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Read      bool
	Timestamp time.Time
}

// UnreadCount returns how many of the given notifications are unread.
func UnreadCount(items []Notification) int {
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n
}
