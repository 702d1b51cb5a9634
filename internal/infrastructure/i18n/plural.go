package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const pluralOther = "other"

var pluralCategories = []string{"zero", "one", "two", "few", "many", pluralOther}

// pluralForms reports whether v is a plural message: a mapping whose keys are
// all CLDR plural categories with string values, "other" included.
func pluralForms(v any) (map[string]string, bool) {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	forms := make(map[string]string, len(m))
	for k, raw := range m {
		if !isPluralCategory(k) {
			return nil, false
		}
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		forms[k] = s
	}
	if _, ok := forms[pluralOther]; !ok {
		return nil, false
	}
	return forms, true
}

func isPluralCategory(k string) bool {
	for _, c := range pluralCategories {
		if c == k {
			return true
		}
	}
	return false
}

// pluralCategory selects the CLDR plural category of count for locale using
// go-i18n's plural rules. Each form present in forms is registered with its
// category name as text, so the localized result is the category itself.
// Categories the message does not define resolve to "other".
func pluralCategory(locale string, forms map[string]string, count int) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return pluralOther
	}

	pick := func(c string) string {
		if _, ok := forms[c]; ok {
			return c
		}
		return ""
	}
	const id = "plural"
	bundle := goi18n.NewBundle(tag)
	msg := &goi18n.Message{
		ID:    id,
		Zero:  pick("zero"),
		One:   pick("one"),
		Two:   pick("two"),
		Few:   pick("few"),
		Many:  pick("many"),
		Other: pluralOther,
	}
	if err := bundle.AddMessages(tag, msg); err != nil {
		return pluralOther
	}
	category, err := goi18n.NewLocalizer(bundle, tag.String()).Localize(&goi18n.LocalizeConfig{
		MessageID:   id,
		PluralCount: count,
	})
	if err != nil || category == "" {
		return pluralOther
	}
	return category
}
