package common

import (
	"strings"
	"unicode"
)

// ToSnake converts a Go identifier to lowercase-with-underscores.
// Acronym runs stay one word: "UserInfo" -> "user_info", "HTTPServer" -> "http_server".
func ToSnake(s string) string {
	var sb strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('_')
			}
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// LowerCamel lowercases the leading word of an identifier:
// "CreatedAt" -> "createdAt", "ID" -> "id", "URLPath" -> "urlPath".
func LowerCamel(s string) string {
	runes := []rune(s)

	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == 0:
		return s
	case upper == len(runes):
		// Whole identifier is one acronym.
		return strings.ToLower(s)
	case upper == 1:
		return string(unicode.ToLower(runes[0])) + string(runes[1:])
	default:
		// Leading acronym followed by a word: keep the acronym's last rune
		// as the start of the next word.
		return strings.ToLower(string(runes[:upper-1])) + string(runes[upper-1:])
	}
}
