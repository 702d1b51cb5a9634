package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mesabot/internal/domain"
	"mesabot/internal/domain/entities"
	"mesabot/internal/ports/output"
)

type LocaleService struct {
	repo    output.UserLocaleRepository
	catalog output.Catalog
	logger  *slog.Logger
}

func NewLocaleService(repo output.UserLocaleRepository, catalog output.Catalog, logger *slog.Logger) *LocaleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocaleService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// SetUserLocale stores the user's preferred locale and returns it in canonical form.
func (s *LocaleService) SetUserLocale(ctx context.Context, userID, tag string) (string, error) {
	locale, ok := supportedLocale(s.catalog, tag)
	if !ok {
		return "", domain.ErrUnsupportedLocale
	}
	pref := &entities.UserLocale{
		UserID:    userID,
		Locale:    locale,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Upsert(ctx, pref); err != nil {
		return "", fmt.Errorf("upsert user locale: %w", err)
	}
	return locale, nil
}

func (s *LocaleService) ClearUserLocale(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user locale: %w", err)
	}
	return nil
}

// ResolveLocale picks the locale for an interaction: the user's stored
// preference, then the Discord client locale, then the catalog default.
func (s *LocaleService) ResolveLocale(ctx context.Context, userID, interactionLocale string) string {
	if userID != "" {
		pref, err := s.repo.FindByUserID(ctx, userID)
		switch {
		case err == nil:
			return s.catalog.Normalize(pref.Locale)
		case !errors.Is(err, domain.ErrUserLocaleNotFound):
			s.logger.Warn("user locale lookup failed", slog.String("user_id", userID), slog.Any("error", err))
		}
	}
	return s.catalog.Normalize(interactionLocale)
}

// supportedLocale normalizes tag and reports whether it actually names a
// supported locale rather than falling back to the default.
func supportedLocale(catalog output.Catalog, tag string) (string, bool) {
	locale := catalog.Normalize(tag)
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(tag)), locale) {
		return "", false
	}
	return locale, true
}
