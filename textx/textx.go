// Package textx holds string helpers.
package textx

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InvalidTitle is the fallback used by OrInvalidTitle.
const InvalidTitle = "Invalid Title"

// Title converts s to title case using language-neutral rules.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// TitleIn converts s to title case using the rules of tag.
func TitleIn(tag language.Tag, s string) string {
	return cases.Title(tag).String(s)
}

// OrDefault returns def when s is empty or only whitespace.
func OrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// OrInvalidTitle returns InvalidTitle when s is empty or only whitespace.
func OrInvalidTitle(s string) string {
	return OrDefault(s, InvalidTitle)
}
