package i18n

import "strings"

// Canonical locales shipped with the bot.
const (
	LocalePortuguese = "pt"
	LocaleEnglish    = "en"

	// DefaultLocale is the default locale a Translator starts with.
	DefaultLocale = LocalePortuguese
)

// DefaultSupportedLocales is the canonical locale set used when none is configured.
var DefaultSupportedLocales = []string{LocalePortuguese, LocaleEnglish}

// NormalizeLocale maps tag onto one of the supported canonical locales.
// The lower-cased tag matches a locale when it starts with it ("en-US" -> "en");
// the longest matching locale wins. Empty and unrecognized tags map to def.
func NormalizeLocale(tag string, supported []string, def string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return def
	}
	match := ""
	for _, loc := range supported {
		if strings.HasPrefix(tag, loc) && len(loc) > len(match) {
			match = loc
		}
	}
	if match == "" {
		return def
	}
	return match
}

func canonicalLocales(locales []string) []string {
	out := make([]string, 0, len(locales))
	seen := make(map[string]struct{}, len(locales))
	for _, loc := range locales {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return out
}
