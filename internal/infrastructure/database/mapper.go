package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"mesabot/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

type userLocaleRow struct {
	UserID    string
	Locale    string
	UpdatedAt pgtype.Timestamptz
}

func userLocaleToDomain(r userLocaleRow) entities.UserLocale {
	return entities.UserLocale{
		UserID:    r.UserID,
		Locale:    r.Locale,
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
