package output

import "mesabot/internal/domain/entities"

// T exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// Catalog is the administrative side of the message catalog: locale
// normalization, cache control and translation audits.
type Catalog interface {
	T
	TranslatePlural(locale, key string, count int, args map[string]any) (string, error)
	Translate(locale, key string, args map[string]any) (any, error)
	// Format substitutes {name} placeholders in a caller-supplied template.
	Format(template string, args map[string]any) (string, error)
	DefaultLocale() string
	SupportedLocales() []string
	Normalize(tag string) string
	SetDefaultLocale(tag string) string
	ClearCache()
	AvailableLocales() ([]string, error)
	LeafKeys(locale string) []string
	DiffLocales(a, b string) entities.LocaleDiff
}
