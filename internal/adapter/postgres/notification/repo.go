// Package notification implements the notification repository and the
// LISTEN/NOTIFY-backed live feed of unread notifications.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new notification repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const notificationColumns = `id, user_id, title, message, read, "timestamp"`

const listUnreadSQL = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id = $1 AND NOT read
ORDER BY "timestamp" DESC, id`

// The update skips rows that are already read so the change trigger only
// fires on a real transition. The outer SELECT reports whether the row exists.
const markReadSQL = `
WITH upd AS (
    UPDATE notifications SET read = true
    WHERE id = $1 AND user_id = $2 AND NOT read
    RETURNING id
)
SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1 AND user_id = $2)`

const markAllReadSQL = `
UPDATE notifications SET read = true
WHERE user_id = $1 AND NOT read`

type notificationRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	Timestamp time.Time `db:"timestamp"`
}

func (r notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Message:   r.Message,
		Read:      r.Read,
		Timestamp: r.Timestamp.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts an unread notification. A nil ts lets the database assign now().
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title, message string, ts *time.Time) (*domain.Notification, error) {
	id := uuid.New()

	cols := []string{"id", "user_id", "title", "message", "read"}
	vals := []any{id, userID, title, message, false}
	if ts != nil {
		cols = append(cols, `"timestamp"`)
		vals = append(vals, ts.UTC().Truncate(time.Microsecond))
	}

	sql, args, err := postgres.Builder().
		Insert("notifications").
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + notificationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert notification: %w", err)
	}

	var row notificationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	n := row.toDomain()
	return &n, nil
}

// MarkRead sets read=true on a notification owned by userID.
// Marking an already-read notification succeeds without a write.
// Returns domain.ErrNotFound if the notification does not exist.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, markReadSQL, id, userID).Scan(&exists); err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if !exists {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of userID as read and returns
// how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, markAllReadSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return int(tag.RowsAffected()), nil
}

// ListUnread returns the unread notifications of userID, newest first.
func (r *Repo) ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	var rows []notificationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, listUnreadSQL, userID); err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}

	result := make([]domain.Notification, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}
