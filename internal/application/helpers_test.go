package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"mesabot/internal/domain"
	"mesabot/internal/domain/entities"
	"mesabot/internal/infrastructure/i18n"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalog(t *testing.T) *i18n.Translator {
	t.Helper()
	fsys := fstest.MapFS{
		"pt/messages.json": {Data: []byte(`{"hello": "Olá, {name}!", "menu": {"open": "Abrir"}, "limit": 3}`)},
		"en/messages.json": {Data: []byte(`{"hello": "Hello, {name}!", "extra": "Extra"}`)},
		"fr/messages.json": {Data: []byte(`{"hello": "Bonjour"}`)},
	}
	tr, err := i18n.NewTranslator(fsys, "pt", i18n.WithLogger(quietLogger()))
	require.NoError(t, err)
	return tr
}

type memoryLocaleRepo struct {
	mu      sync.Mutex
	prefs   map[string]entities.UserLocale
	findErr error
}

func newMemoryLocaleRepo() *memoryLocaleRepo {
	return &memoryLocaleRepo{prefs: map[string]entities.UserLocale{}}
}

func (r *memoryLocaleRepo) FindByUserID(_ context.Context, userID string) (*entities.UserLocale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	pref, ok := r.prefs[userID]
	if !ok {
		return nil, domain.ErrUserLocaleNotFound
	}
	return &pref, nil
}

func (r *memoryLocaleRepo) Upsert(_ context.Context, pref *entities.UserLocale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pref.UserID == "" {
		return errors.New("empty user id")
	}
	r.prefs[pref.UserID] = *pref
	return nil
}

func (r *memoryLocaleRepo) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prefs, userID)
	return nil
}
