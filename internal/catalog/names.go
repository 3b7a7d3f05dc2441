package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Titleize turns a symbolic name such as "PickledGoods" into its display
// form "Pickled Goods". Input that is already spaced is re-cased.
func Titleize(symbol string) string {
	return strings.Join(titledWords(symbol), " ")
}

// Pascalize is the reverse of Titleize: "pickled goods", "Pickled Goods"
// and "PickledGoods" all become "PickledGoods".
func Pascalize(display string) string {
	return strings.Join(titledWords(display), "")
}

func titledWords(s string) []string {
	words := splitWords(s)
	caser := cases.Title(language.English)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return words
}

// splitWords breaks s on separators and on lower-to-upper case boundaries.
// An upper-case run followed by a lower-case letter starts a new word at
// the last capital ("HTTPServer" -> "HTTP", "Server").
func splitWords(s string) []string {
	runes := []rune(strings.TrimSpace(s))
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if unicode.IsSpace(r) || r == '_' || r == '-' {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
