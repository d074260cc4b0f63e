package corpus

import (
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Corpus is a source text plus the word and phrase pools derived from it.
type Corpus struct {
	text    string
	words   func() []string
	phrases func() [][]string
}

// New creates a Corpus from raw text. Segmentation is deferred until the
// pools are first requested.
func New(text string) *Corpus {
	c := &Corpus{text: text}
	c.words = sync.OnceValue(func() []string { return splitWords(c.text) })
	c.phrases = sync.OnceValue(func() [][]string { return splitPhrases(c.text) })
	return c
}

// Text returns the original text body.
func (c *Corpus) Text() string {
	return c.text
}

// Words returns the word pool in source order.
func (c *Corpus) Words() []string {
	return slices.Clone(c.words())
}

// Phrases returns the phrase pool in source order, including empty phrases
// produced by consecutive or trailing delimiters.
func (c *Corpus) Phrases() [][]string {
	src := c.phrases()
	out := make([][]string, len(src))
	for i, p := range src {
		out[i] = slices.Clone(p)
	}
	return out
}

// FilterWords returns the words whose rune length is at least minLength.
func (c *Corpus) FilterWords(minLength int) []string {
	src := c.words()
	out := make([]string, 0, len(src))
	for _, w := range src {
		if utf8.RuneCountInString(w) >= minLength {
			out = append(out, w)
		}
	}
	return out
}

// FilterPhrases returns the phrases whose token count falls within
// [minLength, maxLength].
func (c *Corpus) FilterPhrases(minLength, maxLength int) [][]string {
	src := c.phrases()
	out := make([][]string, 0, len(src))
	for _, p := range src {
		if len(p) >= minLength && len(p) <= maxLength {
			out = append(out, slices.Clone(p))
		}
	}
	return out
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isPhraseDelimiter(r rune) bool {
	return r == '.' || r == ','
}

// splitWords lower-cases text and splits it on every non-alphanumeric rune.
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isAlphanumeric(r)
	})
}

// splitPhrases lower-cases text, blanks everything but alphanumerics,
// delimiters and newlines, then splits on '.' and ','.
func splitPhrases(text string) [][]string {
	cleaned := strings.Map(func(r rune) rune {
		if isAlphanumeric(r) || isPhraseDelimiter(r) || r == '\n' {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	segments := splitOnDelimiters(cleaned)
	phrases := make([][]string, len(segments))
	for i, seg := range segments {
		phrases[i] = strings.Fields(seg)
	}
	return phrases
}

// splitOnDelimiters splits like strings.Split on either delimiter: empty
// segments between adjacent delimiters are kept.
func splitOnDelimiters(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if isPhraseDelimiter(r) {
			out = append(out, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(out, s[start:])
}
