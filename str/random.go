package str

import (
	"math/bits"
	"strings"

	"github.com/hasbyte1/go-lodash-utils/internal/random"
)

// Character sets for Random.
const (
	LowerCaseLetters = "abcdefghijklmnopqrstuvwxyz"
	UpperCaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LowerCaseLetters + UpperCaseLetters
	Numbers          = "0123456789"
	Alphanumeric     = Letters + Numbers
	Hexadecimal      = "0123456789abcdef"
	Special          = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	AllCharacters    = Alphanumeric + Special
)

// Random returns a string of length runes, each drawn independently and
// uniformly from charset.
//
// Indices are taken a few bits at a time from a single 64-bit random word;
// indices that fall outside the charset are discarded rather than folded
// back, so no rune is favoured.
func Random(length int, charset string) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	set := []rune(charset)
	if len(set) == 0 {
		return "", ErrEmptyCharset
	}
	if len(set) == 1 {
		return strings.Repeat(charset, length), nil
	}

	idBits := bits.Len(uint(len(set) - 1))
	mask := uint64(1)<<idBits - 1
	perWord := 63 / idBits

	var b strings.Builder
	b.Grow(length)
	var cache uint64
	remaining := 0
	for n := 0; n < length; {
		if remaining == 0 {
			cache, remaining = random.Uint64(), perWord
		}
		idx := cache & mask
		cache >>= idBits
		remaining--
		if idx < uint64(len(set)) {
			b.WriteRune(set[idx])
			n++
		}
	}
	return b.String(), nil
}
