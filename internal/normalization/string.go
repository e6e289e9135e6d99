package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName produces the canonical comparison key for a name: trimmed,
// lower-cased, diacritics removed. "Sobremesas", " sobremesas " and
// "SÔBREMESAS" all normalize to the same key.
func NormalizeName(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	stripped, _, err := transform.String(stripAccents, normalized)
	if err != nil {
		return normalized
	}
	return stripped
}
