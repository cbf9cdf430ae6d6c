package entity

import "strings"

// WordLength is the number of letters a wordlist entry must have.
const WordLength = 5

// NormalizeWordToken trims surrounding whitespace and lowercases the token.
func NormalizeWordToken(word string) string {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(trimmed)
}

// IsWordlistToken reports whether an already normalized token is exactly
// WordLength ASCII letters.
func IsWordlistToken(token string) bool {
	if len(token) != WordLength {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
