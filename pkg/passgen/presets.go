package passgen

import (
	"fmt"

	"github.com/dmitrymomot/passgen/pkg/corpus"
)

// XKCD returns the "correct horse battery staple" pipeline: four words of at
// least four runes each.
func XKCD(c *corpus.Corpus) (Generator, error) {
	return NewWordSampler(c, 4, 4)
}

type phraseConfig struct {
	minLength int
	maxLength int
	caseConv  Case
	defects   int
	digits    int
}

// PhraseOption configures DefectPhrase.
type PhraseOption func(*phraseConfig)

// PhraseLength sets the accepted phrase length in words. Default: 3 to 4.
func PhraseLength(minLength, maxLength int) PhraseOption {
	return func(c *phraseConfig) {
		c.minLength = minLength
		c.maxLength = maxLength
	}
}

// PhraseCase sets the case convention applied to the phrase. Default: camel.
func PhraseCase(cs Case) PhraseOption {
	return func(c *phraseConfig) {
		c.caseConv = cs
	}
}

// PhraseDefects sets the exact number of defects per password. Default: 1.
func PhraseDefects(n int) PhraseOption {
	return func(c *phraseConfig) {
		c.defects = n
	}
}

// PhraseDigits sets the length of the trailing digit run. Default: 2.
func PhraseDigits(n int) PhraseOption {
	return func(c *phraseConfig) {
		c.digits = n
	}
}

// DefectPhrase returns the default phrase pipeline: a random phrase, a case
// convention, either symbol or vowel defects, then a run of digits.
func DefectPhrase(c *corpus.Corpus, opts ...PhraseOption) (Generator, error) {
	cfg := &phraseConfig{
		minLength: 3,
		maxLength: 4,
		caseConv:  CaseCamel,
		defects:   1,
		digits:    2,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	caseConv, err := ParseCase(string(cfg.caseConv))
	if err != nil {
		return nil, fmt.Errorf("phrase case: %w", err)
	}
	phrase, err := NewPhraseSampler(c, cfg.minLength, cfg.maxLength)
	if err != nil {
		return nil, fmt.Errorf("phrase sampler: %w", err)
	}
	symbols, err := SymbolDefects(cfg.defects, cfg.defects)
	if err != nil {
		return nil, fmt.Errorf("symbol defects: %w", err)
	}
	vowelSwaps, err := VowelDefects(cfg.defects, cfg.defects)
	if err != nil {
		return nil, fmt.Errorf("vowel defects: %w", err)
	}
	digits, err := Digits(cfg.digits)
	if err != nil {
		return nil, fmt.Errorf("digits: %w", err)
	}

	return Chain(phrase, caseConv, Or(symbols, vowelSwaps), digits), nil
}
