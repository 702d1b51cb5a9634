package input

import "context"

type LocaleUseCase interface {
	SetUserLocale(ctx context.Context, userID, tag string) (string, error)
	ClearUserLocale(ctx context.Context, userID string) error
	ResolveLocale(ctx context.Context, userID, interactionLocale string) string
}
