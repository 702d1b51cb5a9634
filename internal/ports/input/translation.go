package input

import (
	"mesabot/internal/domain/entities"
)

type TranslationUseCase interface {
	Overview() (entities.LocalesOverview, error)
	Diff(a, b string) entities.LocaleDiff
	Audit() ([]entities.LocaleDiff, error)
	Reload()
	SetDefaultLocale(tag string) (string, error)
	Preview(locale, key string) (string, error)
	// Keys returns the normalized locale and its sorted leaf keys.
	Keys(locale string) (string, []string)
}
