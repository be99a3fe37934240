package match

import (
	"strings"
	"unicode"
)

// NormalizeID normalizes an item id for fuzzy comparison: camel-case words
// are split, everything is lower-cased and separators are dropped.
//
//	"PizzaShop"  -> "pizzashop"
//	"pizza_shop" -> "pizzashop"
//	"Pizza Shop" -> "pizzashop"
func NormalizeID(s string) string {
	return strings.Join(Tokenize(s), "")
}

// Tokenize splits an id into lower-case words on separators and camel-case
// boundaries.
//
//	"NewYorkCity" -> ["new", "york", "city"]
//	"HTTPServer"  -> ["http", "server"]
//	"pizza-shop"  -> ["pizza", "shop"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
}

// startsWord reports whether runes[i] begins a new camel-case word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "yorkCity": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "HTTPServer": last upper of an acronym followed by a lower-case rune
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
