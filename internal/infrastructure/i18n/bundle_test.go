package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"mesabot/internal/infrastructure/i18n"
)

func TestBundleLookup(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/messages.json": {Data: []byte(`{
			"errors": {"generic": "Oops", "list": ["a", "b"]},
			"errors.flat": "Flat",
			"a.b": "literal",
			"a": {"b": "nested"},
			"count": 3
		}`)},
	}
	b, skipped := i18n.LoadBundle(fsys, "en")
	require.Empty(t, skipped)

	tests := []struct {
		name  string
		key   string
		want  any
		found bool
	}{
		{name: "nested", key: "errors.generic", want: "Oops", found: true},
		{name: "literal flat key", key: "errors.flat", want: "Flat", found: true},
		{name: "nested walk wins over literal", key: "a.b", want: "nested", found: true},
		{name: "non-string leaf", key: "count", want: float64(3), found: true},
		{name: "walk into leaf", key: "errors.generic.more", found: false},
		{name: "missing", key: "nope", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, ok := b.Lookup(tt.key)
			require.Equal(t, tt.found, ok)
			if tt.found {
				require.Equal(t, tt.want, v)
			}
		})
	}

	t.Run("mapping value", func(t *testing.T) {
		t.Parallel()
		v, ok := b.Lookup("errors")
		require.True(t, ok)
		require.IsType(t, map[string]any{}, v)
	})
}

func TestBundleLeafKeys(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/a.yaml": {Data: []byte("z: last\nmenu:\n  open: Open\n  sub:\n    close: Close\nempty: {}\nlist: [1, 2]\n")},
	}
	b, _ := i18n.LoadBundle(fsys, "en")

	require.Equal(t, []string{"list", "menu.open", "menu.sub.close", "z"}, b.LeafKeys())
}
