// Package slug derives the filename-safe identifiers used for sprite files.
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var replacer = strings.NewReplacer(
	" ", "-",
	"_", "-",
	".", "",
	"'", "",
	":", "",
)

// Make lowercases name, turns spaces and underscores into hyphens and drops
// periods, apostrophes and colons. Every other character is kept as is.
func Make(name string) string {
	lower := cases.Lower(language.Und).String(name)

	return replacer.Replace(lower)
}
