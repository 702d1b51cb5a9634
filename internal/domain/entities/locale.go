package entities

import "time"

// UserLocale is a user's preferred canonical locale.
type UserLocale struct {
	UserID    string
	Locale    string
	UpdatedAt time.Time
}

// LocaleDiff lists the leaf keys each locale lacks compared to the other.
type LocaleDiff struct {
	A          string   `json:"a"`
	B          string   `json:"b"`
	MissingInA []string `json:"missing_in_a"`
	MissingInB []string `json:"missing_in_b"`
}

// Complete reports whether both locales define the same leaf keys.
func (d LocaleDiff) Complete() bool {
	return len(d.MissingInA) == 0 && len(d.MissingInB) == 0
}

// LocalesOverview summarizes the catalog state.
type LocalesOverview struct {
	Default   string   `json:"default"`
	Supported []string `json:"supported"`
	Available []string `json:"available"`
}
