// Package sleep implements the sleep schedule repository using PostgreSQL.
package sleep

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides sleep schedule persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new sleep schedule repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const scheduleColumns = `user_id, bedtime, wake_time, updated_at`

const upsertSQL = `
INSERT INTO sleep_schedules (user_id, bedtime, wake_time, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id) DO UPDATE
SET bedtime = EXCLUDED.bedtime, wake_time = EXCLUDED.wake_time, updated_at = now()
RETURNING ` + scheduleColumns

const getSQL = `SELECT ` + scheduleColumns + ` FROM sleep_schedules WHERE user_id = $1`

type scheduleRow struct {
	UserID    uuid.UUID `db:"user_id"`
	Bedtime   time.Time `db:"bedtime"`
	WakeTime  time.Time `db:"wake_time"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r scheduleRow) toDomain() *domain.SleepSchedule {
	return &domain.SleepSchedule{
		UserID:    r.UserID,
		Bedtime:   r.Bedtime.UTC(),
		WakeTime:  r.WakeTime.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// Upsert replaces the schedule of userID.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (*domain.SleepSchedule, error) {
	var row scheduleRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, upsertSQL,
		userID, bedtime.UTC().Truncate(time.Microsecond), wakeTime.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "sleep_schedule", userID)
	}
	return row.toDomain(), nil
}

// Get returns the schedule of userID.
// Returns domain.ErrNotFound if none was set.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error) {
	var row scheduleRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, getSQL, userID); err != nil {
		return nil, postgres.MapError(err, "sleep_schedule", userID)
	}
	return row.toDomain(), nil
}
