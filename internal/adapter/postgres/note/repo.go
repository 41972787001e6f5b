// Package note implements the day-note repository using PostgreSQL.
// A note is keyed by (user_id, day); writes are upserts.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new note repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const noteColumns = `user_id, to_char(day, 'YYYY-MM-DD') AS day, content, updated_at`

const upsertSQL = `
INSERT INTO notes (user_id, day, content, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id, day) DO UPDATE
SET content = EXCLUDED.content, updated_at = now()
RETURNING ` + noteColumns

const getSQL = `
SELECT ` + noteColumns + `
FROM notes
WHERE user_id = $1 AND day = $2`

const listDatesSQL = `
SELECT to_char(day, 'YYYY-MM-DD')
FROM notes
WHERE user_id = $1
ORDER BY day`

type noteRow struct {
	UserID    uuid.UUID `db:"user_id"`
	Day       string    `db:"day"`
	Content   string    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r noteRow) toDomain() *domain.Note {
	return &domain.Note{
		UserID:    r.UserID,
		Date:      r.Day,
		Content:   r.Content,
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Upsert writes content for (userID, day), overwriting any existing note.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, day string, content string) (*domain.Note, error) {
	d, err := domain.ParseDay(day)
	if err != nil {
		return nil, fmt.Errorf("note upsert: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, upsertSQL, userID, d, content); err != nil {
		return nil, postgres.MapError(err, "note", day)
	}
	return row.toDomain(), nil
}

// Get returns the note for (userID, day).
// Returns domain.ErrNotFound if no note exists.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, day string) (*domain.Note, error) {
	d, err := domain.ParseDay(day)
	if err != nil {
		return nil, fmt.Errorf("note get: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, getSQL, userID, d); err != nil {
		return nil, postgres.MapError(err, "note", day)
	}
	return row.toDomain(), nil
}

// ListDates returns the days that carry a note for userID, oldest first.
func (r *Repo) ListDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.q).Query(ctx, listDatesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list note dates: %w", err)
	}
	defer rows.Close()

	days := []string{}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan note date: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list note dates: %w", err)
	}
	return days, nil
}
