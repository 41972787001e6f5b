package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		Username:    "testuser-" + suffix,
		DisplayName: "Test User " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedNote writes a note for userID on day (YYYY-MM-DD).
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, day, content string) domain.Note {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (user_id, day, content, updated_at) VALUES ($1, $2::date, $3, $4)`,
		userID, day, content, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert note: %v", err)
	}

	return domain.Note{UserID: userID, Date: day, Content: content, UpdatedAt: now}
}

// SeedNotification inserts a notification with the given read flag and timestamp.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, read bool, ts time.Time) domain.Notification {
	t.Helper()

	n := domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   "message for " + title,
		Read:      read,
		Timestamp: ts.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notifications (id, user_id, title, message, read, "timestamp")
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, n.Title, n.Message, n.Read, n.Timestamp,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification insert: %v", err)
	}

	return n
}
