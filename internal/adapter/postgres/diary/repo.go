// Package diary implements the diary entry repository using PostgreSQL.
package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides diary entry persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new diary repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const entryColumns = `id, user_id, title, content, created_at`

type entryRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (r entryRow) toDomain() domain.DiaryEntry {
	return domain.DiaryEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// Create inserts a diary entry. created_at is assigned by the database.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title, content string) (*domain.DiaryEntry, error) {
	id := uuid.New()

	sql, args, err := postgres.Builder().
		Insert("diary_entries").
		Columns("id", "user_id", "title", "content").
		Values(id, userID, title, content).
		Suffix("RETURNING " + entryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert diary entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "diary_entry", id)
	}

	entry := row.toDomain()
	return &entry, nil
}

// ListByUser returns every diary entry of userID, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	sql, args, err := postgres.Builder().
		Select(entryColumns).
		From("diary_entries").
		Where("user_id = ?", userID).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list diary entries: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}

	entries := make([]domain.DiaryEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// Delete removes a diary entry owned by userID.
// Returns domain.ErrNotFound if no such entry exists.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("diary_entries").
		Where("id = ? AND user_id = ?", id, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete diary entry: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "diary_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("diary_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
