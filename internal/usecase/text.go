package usecase

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Initials returns the first two characters of name in upper case
func Initials(name string) string {
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return cases.Upper(language.BrazilianPortuguese).String(string(r))
}

// foldText lower-cases s and strips diacritics so "Eletrônicos" and
// "eletronicos" compare equal
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// containsFolded reports whether needle occurs in haystack ignoring case and accents
func containsFolded(haystack, needle string) bool {
	return strings.Contains(foldText(haystack), foldText(needle))
}

// equalFolded reports whether a and b are equal ignoring case and accents
func equalFolded(a, b string) bool {
	return foldText(a) == foldText(b)
}

// FormatPrice formats a price the way the catalog shows it: "R$ 12,90".
// Two decimal places, comma as decimal separator, no thousands grouping.
func FormatPrice(price float64) string {
	amount := strconv.FormatFloat(price, 'f', 2, 64)
	return "R$ " + strings.Replace(amount, ".", ",", 1)
}
