package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mesabot/internal/domain"
	"mesabot/internal/domain/entities"
	"mesabot/internal/ports/output"
)

var _ output.UserLocaleRepository = (*UserLocaleRepository)(nil)

// DBTX is the subset of *pgxpool.Pool (or pgx.Tx) the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	getUserLocale = `SELECT user_id, locale, updated_at FROM user_locales WHERE user_id = $1`

	upsertUserLocale = `INSERT INTO user_locales (user_id, locale, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET locale = EXCLUDED.locale, updated_at = EXCLUDED.updated_at`

	deleteUserLocale = `DELETE FROM user_locales WHERE user_id = $1`
)

// UserLocaleRepository implements output.UserLocaleRepository using pgx.
type UserLocaleRepository struct {
	db DBTX
}

// NewUserLocaleRepository creates a UserLocaleRepository.
func NewUserLocaleRepository(db DBTX) *UserLocaleRepository {
	return &UserLocaleRepository{db: db}
}

func (r *UserLocaleRepository) FindByUserID(ctx context.Context, userID string) (*entities.UserLocale, error) {
	var row userLocaleRow
	err := r.db.QueryRow(ctx, getUserLocale, userID).Scan(&row.UserID, &row.Locale, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserLocaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user locale: %w", err)
	}
	pref := userLocaleToDomain(row)
	return &pref, nil
}

func (r *UserLocaleRepository) Upsert(ctx context.Context, pref *entities.UserLocale) error {
	if _, err := r.db.Exec(ctx, upsertUserLocale, pref.UserID, pref.Locale, timeToPgtypeTimestamptz(pref.UpdatedAt)); err != nil {
		return fmt.Errorf("upsert user locale: %w", err)
	}
	return nil
}

func (r *UserLocaleRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, deleteUserLocale, userID); err != nil {
		return fmt.Errorf("delete user locale: %w", err)
	}
	return nil
}
