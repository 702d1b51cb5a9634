package discord

import (
	"log/slog"

	"mesabot/internal/ports/input"
	"mesabot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	localeUseCase      input.LocaleUseCase
	translationUseCase input.TranslationUseCase
	catalog            output.Catalog
	authorizer         Authorizer
	logger             *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	localeUseCase input.LocaleUseCase,
	translationUseCase input.TranslationUseCase,
	catalog output.Catalog,
	authorizer Authorizer,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		localeUseCase:      localeUseCase,
		translationUseCase: translationUseCase,
		catalog:            catalog,
		authorizer:         authorizer,
		logger:             logger,
	}
}

// tr renders key for locale with the lenient policy used by every reply.
func (h *Handler) tr(locale, key, fallback string, args map[string]any) string {
	return translateOr(h.catalog, h.logger, locale, key, fallback, args)
}
