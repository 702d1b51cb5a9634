package i18n

import (
	"maps"
	"slices"
	"strings"
)

// Bundle is the merged set of messages for one canonical locale.
// It is never modified after LoadBundle returns it; values handed out by
// Lookup share its storage and must be treated as read-only.
type Bundle struct {
	locale   string
	messages map[string]any
	skipped  []SkippedDocument
}

func newBundle(locale string, messages map[string]any, skipped []SkippedDocument) *Bundle {
	return &Bundle{locale: locale, messages: messages, skipped: skipped}
}

// Locale returns the canonical locale the bundle was loaded for.
func (b *Bundle) Locale() string {
	return b.locale
}

// Skipped returns the documents that were left out while loading the bundle.
func (b *Bundle) Skipped() []SkippedDocument {
	return slices.Clone(b.skipped)
}

// Lookup resolves a dot-separated key path. The nested walk is tried first;
// when it fails the whole key path is looked up as a literal top-level key.
// The value may be a string, a nested mapping or any other document value.
func (b *Bundle) Lookup(keyPath string) (any, bool) {
	if v, ok := walk(b.messages, strings.Split(keyPath, ".")); ok {
		return v, true
	}
	v, ok := b.messages[keyPath]
	return v, ok
}

func walk(node any, segments []string) (any, bool) {
	for _, seg := range segments {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return node, true
}

// LeafKeys returns the sorted dot-joined paths of every non-mapping value.
// Mappings are never keys themselves, so an empty mapping contributes nothing.
func (b *Bundle) LeafKeys() []string {
	keys := make(map[string]struct{})
	collectLeaves(b.messages, "", keys)
	return slices.Sorted(maps.Keys(keys))
}

func collectLeaves(m map[string]any, prefix string, keys map[string]struct{}) {
	for k, v := range m {
		p := k
		if prefix != "" {
			p = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			collectLeaves(child, p, keys)
			continue
		}
		keys[p] = struct{}{}
	}
}
