package recipe

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Stage kinds understood by the Builder.
const (
	KindConstant     = "constant"
	KindSurround     = "surround"
	KindWords        = "words"
	KindPhrase       = "phrase"
	KindRandom       = "random"
	KindDigits       = "digits"
	KindLowercase    = "lowercase"
	KindUppercase    = "uppercase"
	KindAlphanumeric = "alphanumeric"
	KindLetters      = "letters"
	KindHex          = "hex"
	KindUUID         = "uuid"
	KindULID         = "ulid"
	KindCase         = "case"
	KindRandomCase   = "random_case"
	KindSymbols      = "symbols"
	KindVowels       = "vowels"
	KindAlpha        = "alpha"
	KindDefects      = "defects"
	KindOr           = "or"
	KindSwitch       = "switch"
	KindChain        = "chain"
)

// Recipe is a named pipeline definition. Its stages run left to right.
type Recipe struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Stages      []Stage `yaml:"stages"`
}

// Stage describes one pipeline step. Which fields apply depends on Kind:
//
//	constant                  value
//	surround                  left, right
//	words                     corpus, count, max_count, min_length
//	phrase                    corpus, min, max (words per phrase)
//	random                    alphabet, length
//	digits, lowercase, ...    length
//	hex                       length, upper
//	case                      case
//	symbols, vowels           min, max (defects per password)
//	alpha                     min, max, consonants, no_vowels, any_letter
//	defects                   min, max, groups
//	or                        exactly two stages
//	switch, chain             one or more stages
//
// Omitted bounds take defaults rather than zero: words draw 4 words,
// phrases hold 3 to 4 words and defect stages apply exactly one defect.
// A max_count or max left at zero means "same as the minimum".
type Stage struct {
	Kind      string  `yaml:"kind"`
	Value     string  `yaml:"value,omitempty"`
	Left      string  `yaml:"left,omitempty"`
	Right     string  `yaml:"right,omitempty"`
	Corpus    string  `yaml:"corpus,omitempty"`
	Count      int     `yaml:"count,omitempty"`
	MaxCount   int     `yaml:"max_count,omitempty"`
	MinLength  int     `yaml:"min_length,omitempty"`
	Min        int     `yaml:"min,omitempty"`
	Max        int     `yaml:"max,omitempty"`
	Length     int     `yaml:"length,omitempty"`
	Alphabet   string  `yaml:"alphabet,omitempty"`
	Upper      bool    `yaml:"upper,omitempty"`
	Case       string  `yaml:"case,omitempty"`
	Consonants bool    `yaml:"consonants,omitempty"`
	NoVowels   bool    `yaml:"no_vowels,omitempty"`
	AnyLetter  bool    `yaml:"any_letter,omitempty"`
	Groups     []Group `yaml:"groups,omitempty"`
	Stages     []Stage `yaml:"stages,omitempty"`
}

// Group is one entry of a custom substitution table: every rune of From
// may be replaced by any rune of To.
type Group struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Parse decodes a YAML recipe. Unknown fields are rejected so that a typo
// in a stage does not silently fall back to a zero value.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRecipe
		}
		return nil, errors.Join(ErrInvalidRecipe, err)
	}
	if len(r.Stages) == 0 {
		return nil, ErrEmptyRecipe
	}
	return &r, nil
}

// Marshal encodes r back to YAML.
func Marshal(r *Recipe) ([]byte, error) {
	if r == nil {
		return nil, ErrEmptyRecipe
	}
	return yaml.Marshal(r)
}
