package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync/atomic"

	"mesabot/internal/domain/entities"
	"mesabot/internal/ports/output"
)

// ErrUnsupportedLocale is returned when the configured default locale is not
// one of the supported locales.
var ErrUnsupportedLocale = errors.New("i18n: unsupported locale")

// Ensure Translator implements the output ports.
var (
	_ output.T       = (*Translator)(nil)
	_ output.Catalog = (*Translator)(nil)
)

// Translator resolves dot-separated message keys against per-locale bundles
// loaded lazily from fsys, where each top-level directory is a locale.
//
// A Translator is safe for concurrent use. The default locale belongs to the
// instance; changing it invalidates the bundle cache.
type Translator struct {
	fsys          fs.FS
	supported     []string
	defaultLocale atomic.Pointer[string]
	cache         *bundleCache
	logger        *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithSupportedLocales replaces the canonical locale set.
func WithSupportedLocales(locales ...string) Option {
	return func(t *Translator) {
		if canon := canonicalLocales(locales); len(canon) > 0 {
			t.supported = canon
		}
	}
}

// WithLogger sets the logger used for load diagnostics and missing keys.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator builds a Translator over fsys with the given default locale
// (e.g. "pt"). The default must normalize onto a supported locale.
func NewTranslator(fsys fs.FS, defaultLocale string, opts ...Option) (*Translator, error) {
	t := &Translator{
		fsys:      fsys,
		supported: slices.Clone(DefaultSupportedLocales),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	def := NormalizeLocale(defaultLocale, t.supported, "")
	if def == "" {
		return nil, fmt.Errorf("%w: default %q not in %v", ErrUnsupportedLocale, defaultLocale, t.supported)
	}
	t.defaultLocale.Store(&def)
	t.cache = newBundleCache(len(t.supported))
	return t, nil
}

// DefaultLocale returns the current default locale.
func (t *Translator) DefaultLocale() string {
	return *t.defaultLocale.Load()
}

// SupportedLocales returns the canonical locales tags are normalized onto.
func (t *Translator) SupportedLocales() []string {
	return slices.Clone(t.supported)
}

// Normalize maps tag onto a supported locale, or the current default.
func (t *Translator) Normalize(tag string) string {
	return NormalizeLocale(tag, t.supported, t.DefaultLocale())
}

// SetDefaultLocale normalizes tag, stores it as the new default and clears
// the bundle cache. It returns the stored default.
func (t *Translator) SetDefaultLocale(tag string) string {
	def := t.Normalize(tag)
	t.defaultLocale.Store(&def)
	t.ClearCache()
	t.logger.Info("i18n: default locale changed", slog.String("locale", def))
	return def
}

// ClearCache drops every memoized bundle; the next lookup of any locale
// reads its documents again.
func (t *Translator) ClearCache() {
	t.cache.clear()
	bundleCacheClears.Inc()
}

// Bundle returns the memoized bundle of the normalized locale, loading it on
// first use. Repeated calls return the same *Bundle until the cache is cleared.
func (t *Translator) Bundle(locale string) *Bundle {
	locale = t.Normalize(locale)
	entries := t.cache.current()
	if b, ok := entries.Get(locale); ok {
		bundleCacheHits.Inc()
		return b
	}
	bundleCacheMisses.Inc()

	// Two cold loads of the same locale may race; both build equivalent bundles.
	b, skipped := LoadBundle(t.fsys, locale)
	for _, doc := range skipped {
		skippedDocuments.WithLabelValues(locale).Inc()
		t.logger.Warn("i18n: document skipped",
			slog.String("locale", locale),
			slog.String("path", doc.Path),
			slog.Any("error", doc.Err),
		)
	}
	entries.Add(locale, b)
	return b
}

// Lookup resolves key in the normalized locale, then in the default locale.
// The raw value is returned as stored in the bundle.
func (t *Translator) Lookup(locale, key string) (any, bool) {
	locale = t.Normalize(locale)
	if v, ok := t.Bundle(locale).Lookup(key); ok {
		return v, true
	}
	if def := t.DefaultLocale(); locale != def {
		if v, ok := t.Bundle(def).Lookup(key); ok {
			return v, true
		}
	}
	missingKeys.WithLabelValues(locale).Inc()
	t.logger.Debug("i18n: missing key", slog.String("locale", locale), slog.String("key", key))
	return nil, false
}

// Translate is the strict translation path. A missing key resolves to the
// key itself. String values are formatted with args and a *FormatError is
// returned when substitution fails; other values are returned as-is.
func (t *Translator) Translate(locale, key string, args map[string]any) (any, error) {
	v, ok := t.Lookup(locale, key)
	if !ok {
		v = key
	}
	s, isString := v.(string)
	if !isString {
		return v, nil
	}
	return Format(s, args)
}

// Format runs the package formatter on a template that does not come from
// the bundles, such as a built-in fallback text.
func (t *Translator) Format(template string, args map[string]any) (string, error) {
	return Format(template, args)
}

// TranslatePlural renders a plural message for count. The CLDR category is
// chosen from the locale the message was found in; "count" is added to args.
// A plain string message is used for every count.
func (t *Translator) TranslatePlural(locale, key string, count int, args map[string]any) (string, error) {
	locale = t.Normalize(locale)
	found := locale
	v, ok := t.Bundle(locale).Lookup(key)
	if !ok && locale != t.DefaultLocale() {
		found = t.DefaultLocale()
		v, ok = t.Bundle(found).Lookup(key)
	}
	if !ok {
		missingKeys.WithLabelValues(locale).Inc()
		return key, nil
	}

	withCount := make(map[string]any, len(args)+1)
	for k, a := range args {
		withCount[k] = a
	}
	withCount["count"] = count

	if s, ok := v.(string); ok {
		return Format(s, withCount)
	}
	forms, ok := pluralForms(v)
	if !ok {
		return key, nil
	}
	return Format(forms[pluralCategory(found, forms, count)], withCount)
}

// T is the lenient translation path behind the output.T port: it never
// fails. Format errors yield the unformatted template and non-string values
// yield the key.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	v, err := t.Translate(locale, key, data)
	if err != nil {
		t.logger.Warn("i18n: format failed", slog.String("key", key), slog.Any("error", err))
		if raw, ok := t.Lookup(locale, key); ok {
			if s, ok := raw.(string); ok {
				return s
			}
		}
		return key
	}
	s, ok := v.(string)
	if !ok {
		t.logger.Debug("i18n: key addresses a non-string value", slog.String("key", key))
		return key
	}
	return s
}

// AvailableLocales lists the locale directories present in the bundle root.
func (t *Translator) AvailableLocales() ([]string, error) {
	return availableLocales(t.fsys)
}

// LeafKeys returns the leaf key paths of the normalized locale's bundle.
func (t *Translator) LeafKeys(locale string) []string {
	return t.Bundle(locale).LeafKeys()
}

// DiffLocales compares the leaf key sets of two locales. Only leaves count:
// a path that is a mapping in one locale and a leaf in the other appears only
// in the leaf side's set.
func (t *Translator) DiffLocales(a, b string) entities.LocaleDiff {
	a, b = t.Normalize(a), t.Normalize(b)
	keysA, keysB := t.LeafKeys(a), t.LeafKeys(b)
	return entities.LocaleDiff{
		A:          a,
		B:          b,
		MissingInA: difference(keysB, keysA),
		MissingInB: difference(keysA, keysB),
	}
}

// difference returns the sorted keys of from that are absent in other.
func difference(from, other []string) []string {
	out := []string{}
	for _, k := range from {
		if _, found := slices.BinarySearch(other, k); !found {
			out = append(out, k)
		}
	}
	return out
}
