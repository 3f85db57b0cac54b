package str

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type runeClass uint8

const (
	separator runeClass = iota
	upper
	lower // also caseless letters such as kana or CJK
	digit
)

func classify(r rune) runeClass {
	switch {
	case unicode.IsUpper(r):
		return upper
	case unicode.IsLetter(r):
		return lower
	case unicode.IsDigit(r):
		return digit
	}
	return separator
}

// Words splits s into words. A new word starts
//
//   - after any run of separators (anything that is not a letter or digit;
//     separators are dropped),
//   - at an upper-case letter following a lower-case letter or a digit,
//   - where a digit run starts or ends,
//   - at the last upper-case letter of an acronym that is followed by a
//     lower-case letter ("HTTPRequest" → "HTTP", "Request").
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0)
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	prev := separator
	for i, r := range runes {
		class := classify(r)
		if class == separator {
			flush()
			prev = separator
			continue
		}
		if len(current) > 0 && startsWord(prev, class, runes, i) {
			flush()
		}
		current = append(current, r)
		prev = class
	}
	flush()
	return words
}

func startsWord(prev, class runeClass, runes []rune, i int) bool {
	switch {
	case class == upper && (prev == lower || prev == digit):
		return true
	case class == upper && prev == upper:
		return i+1 < len(runes) && classify(runes[i+1]) == lower
	case class == digit:
		return prev != digit
	}
	return prev == digit
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
//
//	Capitalize("rUsT") // → "Rust"
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// CamelCase joins the words of s with the first one lower-cased and the rest
// capitalized.
func CamelCase(s string) string {
	words := Words(s)
	for i, w := range words {
		if i == 0 {
			words[i] = strings.ToLower(w)
		} else {
			words[i] = Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// PascalCase joins the capitalized words of s.
func PascalCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, "")
}

// SnakeCase joins the lower-cased words of s with underscores.
func SnakeCase(s string) string {
	return joinLower(s, "_")
}

// KebabCase joins the lower-cased words of s with hyphens.
func KebabCase(s string) string {
	return joinLower(s, "-")
}

func joinLower(s, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}
