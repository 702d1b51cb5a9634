package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mesabot/internal/infrastructure/i18n"
)

func TestTranslatorWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	doc := filepath.Join(dir, "en", "common.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"title": "Before"}`), 0o644))

	tr, err := i18n.NewTranslator(os.DirFS(dir), "en", i18n.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, "Before", tr.T("en", "title", nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Watch(ctx, dir, 10*time.Millisecond) }()

	// Rewrite on every tick: the first writes may land before the watch is registered.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(doc, []byte(`{"title": "After"}`), 0o644)
		return tr.T("en", "title", nil) == "After"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestTranslatorWatchMissingDir(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")
	tr, err := i18n.NewTranslator(os.DirFS(missing), "en", i18n.WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Watch(ctx, missing, time.Millisecond) }()

	select {
	case err := <-done:
		t.Fatalf("watch returned before cancel: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	// Lookups keep working on empty bundles.
	require.Equal(t, "title", tr.T("en", "title", nil))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
