package str

import (
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-lodash-utils/internal/index"
)

// CharLength returns the number of runes in s.
func CharLength(s string) int {
	return utf8.RuneCountInString(s)
}

// Substring returns at most length runes of s starting at offset.
// A negative offset counts from the end and is clamped to the start of s.
//
//	Substring("hello world", -5, 3) // → "wor"
func Substring(s string, offset, length int) string {
	runes := []rune(s)
	start := index.Clamp(len(runes), offset)
	if length <= 0 || start >= len(runes) {
		return ""
	}
	end := len(runes)
	if length < end-start {
		end = start + length
	}
	return string(runes[start:end])
}

// Ellipsis trims s and truncates it to length runes, the last three of
// which become "...". Strings that already fit are returned trimmed.
func Ellipsis(s string, length int) string {
	trimmed := strings.TrimSpace(s)
	runes := []rune(trimmed)
	if len(runes) <= length {
		return trimmed
	}
	if len(runes) < 3 || length < 3 {
		return "..."
	}
	return string(runes[:length-3]) + "..."
}

// ChunkString splits s into pieces of size runes; the last piece may be
// shorter. An empty s yields a single empty piece.
// Returns [ErrInvalidSize] when size <= 0.
func ChunkString(s string, size int) ([]string, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	runes := []rune(s)
	if len(runes) <= size {
		return []string{s}, nil
	}
	out := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		out = append(out, string(runes[i:min(i+size, len(runes))]))
	}
	return out, nil
}
