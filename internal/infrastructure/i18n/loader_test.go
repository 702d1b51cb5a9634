package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"mesabot/internal/infrastructure/i18n"
)

func TestLoadBundle(t *testing.T) {
	t.Parallel()

	t.Run("merges documents in file name order", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"pt/a.json": {Data: []byte(`{"greet": {"hello": "Olá", "bye": "Tchau"}, "title": "A"}`)},
			"pt/b.yaml": {Data: []byte("greet:\n  hello: Oi\ntitle: B\n")},
			"pt/c.toml": {Data: []byte("[greet]\nnight = \"Boa noite\"\n")},
		}

		b, skipped := i18n.LoadBundle(fsys, "pt")
		require.Empty(t, skipped)
		require.Equal(t, "pt", b.Locale())

		v, ok := b.Lookup("greet.hello")
		require.True(t, ok)
		require.Equal(t, "Oi", v)

		v, ok = b.Lookup("greet.bye")
		require.True(t, ok)
		require.Equal(t, "Tchau", v)

		v, ok = b.Lookup("greet.night")
		require.True(t, ok)
		require.Equal(t, "Boa noite", v)

		v, ok = b.Lookup("title")
		require.True(t, ok)
		require.Equal(t, "B", v)
	})

	t.Run("deep merge keeps sibling leaves", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/a.json": {Data: []byte(`{"a": {"x": 1, "y": 2}}`)},
			"en/b.json": {Data: []byte(`{"a": {"y": 3, "z": 4}}`)},
		}

		b, _ := i18n.LoadBundle(fsys, "en")
		v, ok := b.Lookup("a")
		require.True(t, ok)
		require.Equal(t, map[string]any{"x": float64(1), "y": float64(3), "z": float64(4)}, v)
	})

	t.Run("later leaf replaces earlier mapping", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/1.json": {Data: []byte(`{"menu": {"open": "Open"}}`)},
			"en/2.json": {Data: []byte(`{"menu": "Menu"}`)},
		}

		b, _ := i18n.LoadBundle(fsys, "en")
		v, ok := b.Lookup("menu")
		require.True(t, ok)
		require.Equal(t, "Menu", v)
		_, ok = b.Lookup("menu.open")
		require.False(t, ok)
	})

	t.Run("skips malformed documents", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/bad.json":  {Data: []byte(`{"broken":`)},
			"en/null.json": {Data: []byte(`null`)},
			"en/bad.yaml":  {Data: []byte("key: [unclosed\n")},
			"en/good.json": {Data: []byte(`{"ok": "fine"}`)},
		}

		b, skipped := i18n.LoadBundle(fsys, "en")
		require.Len(t, skipped, 3)
		require.Len(t, b.Skipped(), 3)
		for _, doc := range skipped {
			require.Equal(t, "en", doc.Locale)
			require.Error(t, doc.Err)
			require.ErrorIs(t, doc, doc.Err)
		}
		require.Equal(t, "en/bad.json", skipped[0].Path)

		v, ok := b.Lookup("ok")
		require.True(t, ok)
		require.Equal(t, "fine", v)
	})

	t.Run("missing locale directory yields empty bundle", func(t *testing.T) {
		t.Parallel()
		b, skipped := i18n.LoadBundle(fstest.MapFS{}, "en")
		require.Empty(t, skipped)
		require.Empty(t, b.LeafKeys())
	})

	t.Run("ignores subdirectories and unknown extensions", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/notes.txt":        {Data: []byte("not a document")},
			"en/nested/deep.json": {Data: []byte(`{"deep": "x"}`)},
			"en/ok.YML":           {Data: []byte("ok: yes-upper\n")},
		}

		b, skipped := i18n.LoadBundle(fsys, "en")
		require.Empty(t, skipped)
		require.Equal(t, []string{"ok"}, b.LeafKeys())
	})

	t.Run("empty yaml and toml documents are empty mappings", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/empty.yaml": {Data: []byte("")},
			"en/empty.toml": {Data: []byte("")},
		}

		b, skipped := i18n.LoadBundle(fsys, "en")
		require.Empty(t, skipped)
		require.Empty(t, b.LeafKeys())
	})
}
