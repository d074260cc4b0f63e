package passgen

import (
	"math/rand/v2"
	"strings"

	"github.com/dmitrymomot/passgen/pkg/corpus"
)

// WordSampler appends between nMin and nMax words drawn with replacement
// from a corpus word pool.
type WordSampler struct {
	words []string
	nMin  int
	nMax  int
}

// NewWordSampler builds a sampler appending exactly n words of c with at
// least minLength runes. It fails if n is negative or no word survives the
// filter.
func NewWordSampler(c *corpus.Corpus, n, minLength int) (*WordSampler, error) {
	return NewWordRangeSampler(c, n, n, minLength)
}

// NewWordRangeSampler is like NewWordSampler but draws the word count
// uniformly from [nMin, nMax] on every call.
func NewWordRangeSampler(c *corpus.Corpus, nMin, nMax, minLength int) (*WordSampler, error) {
	if c == nil {
		return nil, ErrNilCorpus
	}
	if nMin < 0 || nMax < 0 {
		return nil, ErrNegativeCount
	}
	if nMin > nMax {
		return nil, ErrInvalidRange
	}
	words := c.FilterWords(minLength)
	if len(words) == 0 {
		return nil, ErrEmptyWordPool
	}
	return &WordSampler{words: words, nMin: nMin, nMax: nMax}, nil
}

// PoolSize reports how many words the sampler draws from.
func (w *WordSampler) PoolSize() int {
	return len(w.words)
}

// Transform joins a non-empty seed and the sampled words with single spaces.
func (w *WordSampler) Transform(rng *rand.Rand, seed string) string {
	n := w.nMin
	if w.nMax > w.nMin {
		n += rng.IntN(w.nMax - w.nMin + 1)
	}

	parts := make([]string, 0, n+1)
	if seed != "" {
		parts = append(parts, seed)
	}
	for range n {
		parts = append(parts, w.words[rng.IntN(len(w.words))])
	}
	return strings.Join(parts, " ")
}

// PhraseSampler appends one phrase drawn from a corpus phrase pool.
type PhraseSampler struct {
	phrases []string
}

// NewPhraseSampler builds a sampler over the phrases of c whose token count
// lies within [minLength, maxLength]. An empty filtered pool is an error.
func NewPhraseSampler(c *corpus.Corpus, minLength, maxLength int) (*PhraseSampler, error) {
	if c == nil {
		return nil, ErrNilCorpus
	}
	if minLength < 0 || maxLength < 0 {
		return nil, ErrNegativeCount
	}
	if minLength > maxLength {
		return nil, ErrInvalidRange
	}
	filtered := c.FilterPhrases(minLength, maxLength)
	if len(filtered) == 0 {
		return nil, ErrEmptyPhrasePool
	}
	phrases := make([]string, len(filtered))
	for i, p := range filtered {
		phrases[i] = strings.Join(p, " ")
	}
	return &PhraseSampler{phrases: phrases}, nil
}

// PoolSize reports how many phrases the sampler draws from.
func (p *PhraseSampler) PoolSize() int {
	return len(p.phrases)
}

// Transform appends the chosen phrase to seed without a separator.
func (p *PhraseSampler) Transform(rng *rand.Rand, seed string) string {
	return seed + p.phrases[rng.IntN(len(p.phrases))]
}
