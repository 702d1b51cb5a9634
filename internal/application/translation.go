package application

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"mesabot/internal/domain"
	"mesabot/internal/domain/entities"
	"mesabot/internal/ports/output"
)

type TranslationService struct {
	catalog output.Catalog
}

func NewTranslationService(catalog output.Catalog) *TranslationService {
	return &TranslationService{catalog: catalog}
}

func (s *TranslationService) Overview() (entities.LocalesOverview, error) {
	available, err := s.catalog.AvailableLocales()
	if err != nil {
		return entities.LocalesOverview{}, fmt.Errorf("available locales: %w", err)
	}
	return entities.LocalesOverview{
		Default:   s.catalog.DefaultLocale(),
		Supported: s.catalog.SupportedLocales(),
		Available: available,
	}, nil
}

func (s *TranslationService) Diff(a, b string) entities.LocaleDiff {
	return s.catalog.DiffLocales(a, b)
}

// Audit diffs every supported locale found on disk against the default locale.
func (s *TranslationService) Audit() ([]entities.LocaleDiff, error) {
	available, err := s.catalog.AvailableLocales()
	if err != nil {
		return nil, fmt.Errorf("available locales: %w", err)
	}
	def := s.catalog.DefaultLocale()
	diffs := make([]entities.LocaleDiff, 0, len(available))
	for _, loc := range available {
		canon, ok := supportedLocale(s.catalog, loc)
		if !ok || canon != loc || loc == def {
			continue
		}
		diffs = append(diffs, s.catalog.DiffLocales(def, loc))
	}
	return diffs, nil
}

func (s *TranslationService) Reload() {
	s.catalog.ClearCache()
}

func (s *TranslationService) SetDefaultLocale(tag string) (string, error) {
	locale, ok := supportedLocale(s.catalog, tag)
	if !ok {
		return "", domain.ErrUnsupportedLocale
	}
	return s.catalog.SetDefaultLocale(locale), nil
}

func (s *TranslationService) Keys(locale string) (string, []string) {
	locale = s.catalog.Normalize(locale)
	return locale, s.catalog.LeafKeys(locale)
}

// Preview renders key in locale without arguments, the way a user would see it.
func (s *TranslationService) Preview(locale, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.ErrEmptyKey
	}
	v, err := s.catalog.Translate(locale, key, nil)
	if err != nil {
		return "", err
	}
	return previewValue(v), nil
}

// previewValue shows a mapping of strings, such as the forms of a plural
// message, as sorted "key: value" pairs.
func previewValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case map[string]any:
		forms := make([]string, 0, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			str, ok := v[k].(string)
			if !ok {
				return fmt.Sprintf("%v", v)
			}
			forms = append(forms, k+": "+str)
		}
		return strings.Join(forms, "; ")
	}
	return fmt.Sprintf("%v", v)
}
