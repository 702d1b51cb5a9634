package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// SkippedDocument describes a bundle document that could not be read or
// parsed. Loading continues with the remaining documents of the locale.
type SkippedDocument struct {
	Locale string
	Path   string
	Err    error
}

func (d SkippedDocument) Error() string {
	return fmt.Sprintf("i18n: skipped %s: %v", d.Path, d.Err)
}

func (d SkippedDocument) Unwrap() error {
	return d.Err
}

// LoadBundle reads every document in the locale directory of fsys and
// deep-merges them in lexicographic file name order, so later documents
// override earlier ones on conflicting leaves.
//
// A missing locale directory yields an empty bundle. Documents that fail to
// read or parse are left out of the bundle and reported in the returned slice.
func LoadBundle(fsys fs.FS, locale string) (*Bundle, []SkippedDocument) {
	messages := map[string]any{}

	// fs.ReadDir returns entries sorted by file name.
	entries, err := fs.ReadDir(fsys, locale)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newBundle(locale, messages, nil), nil
		}
		skipped := []SkippedDocument{{Locale: locale, Path: locale, Err: err}}
		return newBundle(locale, messages, skipped), skipped
	}

	var skipped []SkippedDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		decode, ok := decoders[strings.ToLower(path.Ext(entry.Name()))]
		if !ok {
			continue
		}
		docPath := path.Join(locale, entry.Name())
		doc, err := readDocument(fsys, docPath, decode)
		if err != nil {
			skipped = append(skipped, SkippedDocument{Locale: locale, Path: docPath, Err: err})
			continue
		}
		deepMerge(messages, doc)
	}

	return newBundle(locale, messages, skipped), skipped
}

func readDocument(fsys fs.FS, name string, decode decodeFunc) (map[string]any, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return doc, nil
}

// deepMerge merges src into dst. Mappings present on both sides merge
// recursively; any other value in src replaces the one in dst.
func deepMerge(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				deepMerge(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
}

// availableLocales lists the locale directories at the root of fsys.
func availableLocales(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}
	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			locales = append(locales, entry.Name())
		}
	}
	return locales, nil
}
