package output

import (
	"context"

	"mesabot/internal/domain/entities"
)

type UserLocaleRepository interface {
	// FindByUserID returns domain.ErrUserLocaleNotFound when the user has no preference.
	FindByUserID(ctx context.Context, userID string) (*entities.UserLocale, error)
	Upsert(ctx context.Context, pref *entities.UserLocale) error
	Delete(ctx context.Context, userID string) error
}
