package passgen

import (
	"iter"
	"math/rand/v2"
)

// Sequence is a lazy, endless stream of passwords. Every pull runs the whole
// pipeline from an empty accumulator. It only moves forward and is not safe
// for concurrent use.
type Sequence struct {
	gen Generator
	rng *rand.Rand
}

// NewSequence wraps a composed pipeline. A nil rng is replaced by NewRand().
func NewSequence(g Generator, rng *rand.Rand) *Sequence {
	if rng == nil {
		rng = NewRand()
	}
	return &Sequence{gen: g, rng: rng}
}

// Next produces the next password.
func (s *Sequence) Next() string {
	return s.gen.Transform(s.rng, "")
}

// Take produces the next n passwords. Non-positive n yields nil.
func (s *Sequence) Take(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// All returns an endless iterator over the sequence; stop by breaking out of
// the range loop.
//
//	for pw := range seq.All() {
//	    if accept(pw) {
//	        break
//	    }
//	}
func (s *Sequence) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}
