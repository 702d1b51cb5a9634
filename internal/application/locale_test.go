package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"mesabot/internal/application"
	"mesabot/internal/domain"
)

func TestLocaleService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores canonical locale", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryLocaleRepo()
		svc := application.NewLocaleService(repo, newCatalog(t), quietLogger())

		locale, err := svc.SetUserLocale(ctx, "42", "en-GB")
		require.NoError(t, err)
		require.Equal(t, "en", locale)
		require.Equal(t, "en", repo.prefs["42"].Locale)
		require.False(t, repo.prefs["42"].UpdatedAt.IsZero())
	})

	t.Run("rejects unsupported tag", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryLocaleRepo()
		svc := application.NewLocaleService(repo, newCatalog(t), quietLogger())

		for _, tag := range []string{"fr", "", "klingon"} {
			_, err := svc.SetUserLocale(ctx, "42", tag)
			require.ErrorIs(t, err, domain.ErrUnsupportedLocale)
		}
		require.Empty(t, repo.prefs)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		t.Parallel()
		svc := application.NewLocaleService(newMemoryLocaleRepo(), newCatalog(t), quietLogger())
		_, err := svc.SetUserLocale(ctx, "", "en")
		require.ErrorContains(t, err, "upsert user locale")
	})

	t.Run("resolve order", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryLocaleRepo()
		svc := application.NewLocaleService(repo, newCatalog(t), quietLogger())

		require.Equal(t, "en", svc.ResolveLocale(ctx, "42", "en-US"))
		require.Equal(t, "pt", svc.ResolveLocale(ctx, "42", "fr"))
		require.Equal(t, "pt", svc.ResolveLocale(ctx, "", ""))

		_, err := svc.SetUserLocale(ctx, "42", "pt-BR")
		require.NoError(t, err)
		require.Equal(t, "pt", svc.ResolveLocale(ctx, "42", "en-US"))

		require.NoError(t, svc.ClearUserLocale(ctx, "42"))
		require.Equal(t, "en", svc.ResolveLocale(ctx, "42", "en-US"))
	})

	t.Run("repository failure falls back to client locale", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryLocaleRepo()
		repo.findErr = errors.New("connection refused")
		svc := application.NewLocaleService(repo, newCatalog(t), quietLogger())

		require.Equal(t, "en", svc.ResolveLocale(ctx, "42", "en-GB"))
	})
}
