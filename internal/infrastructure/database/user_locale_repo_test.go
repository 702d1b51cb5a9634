package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"mesabot/internal/domain"
	"mesabot/internal/domain/entities"
	"mesabot/internal/infrastructure/database"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *pgtype.Timestamptz:
			*p = r.values[i].(pgtype.Timestamptz)
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	row     fakeRow
	execErr error
	execs   []execCall
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), db.execErr
}

func (db *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return db.row
}

func TestUserLocaleRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	updated := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("find maps row", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{row: fakeRow{values: []any{"42", "en", pgtype.Timestamptz{Time: updated, Valid: true}}}}
		repo := database.NewUserLocaleRepository(db)

		pref, err := repo.FindByUserID(ctx, "42")
		require.NoError(t, err)
		require.Equal(t, &entities.UserLocale{UserID: "42", Locale: "en", UpdatedAt: updated}, pref)
	})

	t.Run("find missing row", func(t *testing.T) {
		t.Parallel()
		repo := database.NewUserLocaleRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

		_, err := repo.FindByUserID(ctx, "42")
		require.ErrorIs(t, err, domain.ErrUserLocaleNotFound)
	})

	t.Run("find wraps driver errors", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		repo := database.NewUserLocaleRepository(&fakeDB{row: fakeRow{err: boom}})

		_, err := repo.FindByUserID(ctx, "42")
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, domain.ErrUserLocaleNotFound)
	})

	t.Run("upsert passes columns", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{}
		repo := database.NewUserLocaleRepository(db)

		require.NoError(t, repo.Upsert(ctx, &entities.UserLocale{UserID: "42", Locale: "pt", UpdatedAt: updated}))
		require.Len(t, db.execs, 1)
		require.Contains(t, db.execs[0].sql, "ON CONFLICT (user_id)")
		require.Equal(t, []any{"42", "pt", pgtype.Timestamptz{Time: updated, Valid: true}}, db.execs[0].args)
	})

	t.Run("delete wraps errors", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		repo := database.NewUserLocaleRepository(&fakeDB{execErr: boom})

		err := repo.Delete(ctx, "42")
		require.ErrorIs(t, err, boom)
		require.ErrorContains(t, err, "delete user locale")
	})
}
