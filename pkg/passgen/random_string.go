package passgen

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// Alphabets used by the RandomString presets.
const (
	DigitChars     = "0123456789"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	HexChars       = "0123456789abcdef"
	DefaultChars   = LowercaseChars + UppercaseChars + DigitChars
)

// RandomString appends a fixed number of runes drawn uniformly, with
// replacement, from an alphabet. Repeated runes in the alphabet weight the
// draw accordingly.
type RandomString struct {
	alphabet []rune
	length   int
}

// NewRandomString creates a stage appending length runes from alphabet.
func NewRandomString(length int, alphabet string) (*RandomString, error) {
	if length < 0 {
		return nil, ErrNegativeCount
	}
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	if !utf8.ValidString(alphabet) {
		return nil, ErrInvalidAlphabet
	}
	return &RandomString{alphabet: []rune(alphabet), length: length}, nil
}

// Digits appends length decimal digits.
func Digits(length int) (*RandomString, error) {
	return NewRandomString(length, DigitChars)
}

// Lowercase appends length lowercase ASCII letters.
func Lowercase(length int) (*RandomString, error) {
	return NewRandomString(length, LowercaseChars)
}

// Uppercase appends length uppercase ASCII letters.
func Uppercase(length int) (*RandomString, error) {
	return NewRandomString(length, UppercaseChars)
}

// Letters appends length ASCII letters of either case.
func Letters(length int) (*RandomString, error) {
	return NewRandomString(length, LowercaseChars+UppercaseChars)
}

// AlphaNumeric appends length runes from the default alphabet.
func AlphaNumeric(length int) (*RandomString, error) {
	return NewRandomString(length, DefaultChars)
}

// Hexadecimal appends length hex digits, upper-cased when upper is set.
func Hexadecimal(length int, upper bool) (*RandomString, error) {
	if upper {
		return NewRandomString(length, strings.ToUpper(HexChars))
	}
	return NewRandomString(length, HexChars)
}

// Alphabet returns a copy of the configured alphabet.
func (r *RandomString) Alphabet() string {
	return string(r.alphabet)
}

// Transform appends the random runes to seed.
func (r *RandomString) Transform(rng *rand.Rand, seed string) string {
	var b strings.Builder
	b.Grow(len(seed) + r.length*4)
	b.WriteString(seed)
	for range r.length {
		b.WriteRune(r.alphabet[rng.IntN(len(r.alphabet))])
	}
	return b.String()
}
