// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new auth method repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const authMethodColumns = `id, user_id, method, provider_id, password_hash, created_at, updated_at`

const getByOAuthSQL = `
SELECT ` + authMethodColumns + `
FROM auth_methods
WHERE method = $1 AND provider_id = $2`

const getByUserAndMethodSQL = `
SELECT ` + authMethodColumns + `
FROM auth_methods
WHERE user_id = $1 AND method = $2`

const createSQL = `
INSERT INTO auth_methods (user_id, method, provider_id, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING ` + authMethodColumns

const listByUserSQL = `
SELECT ` + authMethodColumns + `
FROM auth_methods
WHERE user_id = $1
ORDER BY created_at`

type authMethodRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Method       string    `db:"method"`
	ProviderID   *string   `db:"provider_id"`
	PasswordHash *string   `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r authMethodRow) toDomain() domain.AuthMethod {
	return domain.AuthMethod{
		ID:           r.ID,
		UserID:       r.UserID,
		Method:       domain.AuthMethodType(r.Method),
		ProviderID:   r.ProviderID,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

// GetByOAuth returns the auth method for the given OAuth provider + provider ID.
func (r *Repo) GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error) {
	var row authMethodRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, getByOAuthSQL, string(method), providerID)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", method)
	}

	am := row.toDomain()
	return &am, nil
}

// GetByUserAndMethod returns the auth method for a user with the given method type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	var row authMethodRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, getByUserAndMethodSQL, userID, string(method))
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", method)
	}

	am := row.toDomain()
	return &am, nil
}

// Create inserts a new auth method row.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	var row authMethodRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, createSQL,
		am.UserID, string(am.Method), am.ProviderID, am.PasswordHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", am.Method)
	}

	result := row.toDomain()
	return &result, nil
}

// ListByUser returns all auth methods for a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AuthMethod, error) {
	var rows []authMethodRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, listByUserSQL, userID); err != nil {
		return nil, fmt.Errorf("auth_method list: %w", err)
	}

	result := make([]domain.AuthMethod, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}
