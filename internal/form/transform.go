package form

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCaseName canonicalizes a name: trims it, splits on whitespace runs,
// upper-cases the first rune of each word leaving the rest unchanged, and
// rejoins with single spaces. " ana  maria " becomes "Ana Maria".
func TitleCaseName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
