package passgen

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case is a deterministic case convention applied to the whole accumulator.
// A Case value is itself a stage.
type Case string

// Supported case conventions.
const (
	CaseCamel      Case = "camel"      // fooBarBaz
	CaseCapitalize Case = "capitalize" // Foo bar baz, separators kept
	CaseClass      Case = "class"      // FooBarBaz
	CaseKebab      Case = "kebab"      // foo-bar-baz
	CaseLower      Case = "lower"      // foo bar baz
	CaseScreaming  Case = "screaming"  // FOO_BAR_BAZ
	CaseSentence   Case = "sentence"   // Foo bar baz
	CaseSnake      Case = "snake"      // foo_bar_baz
	CaseTable      Case = "table"      // foo_bar_bazs
	CaseTitle      Case = "title"      // Foo Bar Baz
	CaseUpper      Case = "upper"      // FOO BAR BAZ
)

// caseAliases is keyed by names with separators and a trailing "case"
// already removed.
var caseAliases = map[string]Case{
	"camel":          CaseCamel,
	"capitalize":     CaseCapitalize,
	"capitalized":    CaseCapitalize,
	"class":          CaseClass,
	"pascal":         CaseClass,
	"kebab":          CaseKebab,
	"lower":          CaseLower,
	"screaming":      CaseScreaming,
	"screamingsnake": CaseScreaming,
	"sentence":       CaseSentence,
	"snake":          CaseSnake,
	"table":          CaseTable,
	"title":          CaseTitle,
	"upper":          CaseUpper,
}

var caseNameSeparators = strings.NewReplacer("-", "", "_", "", " ", "")

// Cases lists the canonical case conventions.
func Cases() []Case {
	return []Case{
		CaseCamel, CaseCapitalize, CaseClass, CaseKebab, CaseLower,
		CaseScreaming, CaseSentence, CaseSnake, CaseTable, CaseTitle,
		CaseUpper,
	}
}

// ParseCase resolves a case name such as "camel", "Pascal", "screaming-snake"
// or "snake_case" to its canonical Case. Separators and a trailing "case"
// are ignored, so "CamelCase" and "kebabcase" resolve too.
func ParseCase(name string) (Case, error) {
	key := caseNameSeparators.Replace(strings.ToLower(strings.TrimSpace(name)))
	if trimmed := strings.TrimSuffix(key, "case"); trimmed != "" {
		key = trimmed
	}
	if c, ok := caseAliases[key]; ok {
		return c, nil
	}
	return "", ErrUnknownCase
}

// CaseTransform parses name and returns the matching case stage.
func CaseTransform(name string) (Generator, error) {
	c, err := ParseCase(name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Transform rewrites seed in the receiver's convention. An unrecognised Case
// returns the seed unchanged.
func (c Case) Transform(_ *rand.Rand, seed string) string {
	return c.Apply(seed)
}

// Apply rewrites s in the receiver's convention.
func (c Case) Apply(s string) string {
	switch c {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseCapitalize:
		return capitalize(s)
	}

	words := splitCaseWords(s)
	if len(words) == 0 {
		return ""
	}

	switch c {
	case CaseCamel:
		for i, w := range words {
			if i == 0 {
				words[i] = strings.ToLower(w)
				continue
			}
			words[i] = titleWord(w)
		}
		return strings.Join(words, "")
	case CaseClass:
		return joinMapped(words, "", titleWord)
	case CaseKebab:
		return joinMapped(words, "-", strings.ToLower)
	case CaseSnake:
		return joinMapped(words, "_", strings.ToLower)
	case CaseScreaming:
		return joinMapped(words, "_", strings.ToUpper)
	case CaseTable:
		last := len(words) - 1
		words[last] = pluralize(strings.ToLower(words[last]))
		return joinMapped(words, "_", strings.ToLower)
	case CaseTitle:
		return joinMapped(words, " ", titleWord)
	case CaseSentence:
		sentence := joinMapped(words, " ", strings.ToLower)
		first := strings.IndexFunc(sentence, unicode.IsSpace)
		if first < 0 {
			return titleWord(sentence)
		}
		return titleWord(sentence[:first]) + sentence[first:]
	}
	return s
}

func joinMapped(words []string, sep string, fn func(string) string) string {
	for i, w := range words {
		words[i] = fn(w)
	}
	return strings.Join(words, sep)
}

// capitalize upper-cases the first rune of s and lower-cases the rest,
// leaving separators in place.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// titleWord upper-cases the first letter of w and lower-cases the rest.
// A Caser keeps state, so a fresh one is used per call.
func titleWord(w string) string {
	return cases.Title(language.Und).String(w)
}

// splitCaseWords breaks s into runs of letters and digits. A lower-case or
// digit rune followed by an upper-case rune also starts a new word, and so
// does the last upper-case rune of an acronym run ("IShall" is "I", "Shall"),
// so camel and class input split back into their parts.
func splitCaseWords(s string) []string {
	var (
		words   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			flush()
			continue
		}
		if n := len(current); n > 0 {
			prev := current[n-1]
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsNumber(prev)):
				flush()
			case unicode.IsLower(r) && unicode.IsUpper(prev) && n > 1 && unicode.IsUpper(current[n-2]):
				current = current[:n-1]
				flush()
				current = append(current, prev)
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}

// pluralize applies basic English plural rules to a lower-case word. Words
// already ending in a single "s" are treated as plural, which keeps table
// case stable when applied twice.
func pluralize(w string) string {
	switch {
	case w == "":
		return w
	case strings.HasSuffix(w, "quiz"):
		return w + "zes"
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "sh"),
		strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "x"):
		return w + "es"
	case strings.HasSuffix(w, "s"):
		return w
	case strings.HasSuffix(w, "y") && len(w) > 1 && !strings.ContainsRune("aeiou", rune(w[len(w)-2])):
		return w[:len(w)-1] + "ies"
	}
	return w + "s"
}

type randomCase struct{}

// RandomCase returns a stage that upper- or lower-cases every rune of the
// seed independently with a fair coin.
func RandomCase() Generator {
	return randomCase{}
}

func (randomCase) Transform(rng *rand.Rand, seed string) string {
	return strings.Map(func(r rune) rune {
		if rng.IntN(2) == 0 {
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	}, seed)
}
