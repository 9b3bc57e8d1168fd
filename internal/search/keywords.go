package search

import (
	"strings"
	"unicode"

	"travelrec/internal/models"
)

// keywordMap maps a normalized keyword to its category. It is never mutated.
var keywordMap = map[string]models.Category{
	"beach":     models.CategoryBeaches,
	"beaches":   models.CategoryBeaches,
	"temple":    models.CategoryTemples,
	"temples":   models.CategoryTemples,
	"country":   models.CategoryCountries,
	"countries": models.CategoryCountries,
}

// Normalize trims surrounding whitespace and lowercases a raw query.
// Whitespace and case mapping follow browser string semantics: U+FEFF is
// trimmed, U+0085 is not, and U+0130 lowers to "i\u0307" rather than "i".
func Normalize(raw string) string {
	trimmed := strings.TrimFunc(raw, isQuerySpace)
	return strings.ToLower(strings.ReplaceAll(trimmed, "\u0130", "i\u0307"))
}

// isQuerySpace reports whitespace and line terminators as a browser trims them.
func isQuerySpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// CategoryFor returns the category for a normalized keyword.
func CategoryFor(keyword string) (models.Category, bool) {
	category, ok := keywordMap[keyword]
	return category, ok
}
