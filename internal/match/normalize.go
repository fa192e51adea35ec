package match

import (
	"strings"
	"unicode"
)

// Words splits an identifier into its words, keeping the original case.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "http_status-code" -> ["http", "status", "code"]
//   - "Base64Value" -> ["Base64", "Value"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && current.Len() > 0 && startsWord(runes, i) {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// LowerWords splits an identifier into lowercase words.
func LowerWords(s string) []string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}

// NormalizeIdent folds an identifier to lowercase with separators removed,
// so that "order_id", "OrderID" and "order-id" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(LowerWords(s), "")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord reports whether a new word begins at runes[i].
// Digits stay attached to the word they follow.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	// "orderID": lower or digit followed by upper
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// "XMLParser": end of an acronym, split before 'P'
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
