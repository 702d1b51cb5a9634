package discord

import (
	"log/slog"

	"mesabot/internal/ports/output"
)

// translateOr renders key for locale. When the message cannot be formatted
// with args (or is not text), fallback is formatted instead; when that fails
// too, fallback is returned unformatted. A missing key renders as the key.
func translateOr(catalog output.Catalog, logger *slog.Logger, locale, key, fallback string, args map[string]any) string {
	v, err := catalog.Translate(locale, key, args)
	if err == nil {
		if s, ok := v.(string); ok {
			return s
		}
	} else {
		logger.Warn("message format failed, using fallback", slog.String("key", key), slog.Any("error", err))
	}
	if s, err := catalog.Format(fallback, args); err == nil {
		return s
	}
	return fallback
}
