// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, email, username, display_name, photo_url, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

// userRow mirrors the users table for scany.
type userRow struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	PhotoURL    *string   `db:"photo_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:          r.ID,
		Email:       r.Email,
		Username:    r.Username,
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, getByIDSQL, id, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, getByEmailSQL, email, email)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, getByUsernameSQL, username, username)
}

func (r *Repo) getOne(ctx context.Context, sql string, key any, arg any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, arg); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. ID, CreatedAt and UpdatedAt are filled in when zero.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "email", "username", "display_name", "photo_url", "created_at", "updated_at").
		Values(id, u.Email, u.Username, u.DisplayName, u.PhotoURL, now, now).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// Update applies a partial profile update. Nil fields are left untouched.
// An empty photoURL clears the stored photo.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, displayName *string, photoURL *string) (*domain.User, error) {
	b := postgres.Builder().
		Update("users").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where("id = ?", id).
		Suffix("RETURNING " + userColumns)

	if displayName != nil {
		b = b.Set("display_name", *displayName)
	}
	if photoURL != nil {
		if *photoURL == "" {
			b = b.Set("photo_url", nil)
		} else {
			b = b.Set("photo_url", *photoURL)
		}
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}
