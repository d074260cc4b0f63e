package passgen

import "math/rand/v2"

type constant string

// Constant returns a stage that appends value to the seed.
func Constant(value string) Generator {
	return constant(value)
}

func (c constant) Transform(_ *rand.Rand, seed string) string {
	return seed + string(c)
}

type surround struct {
	left, right string
}

// Surround returns a stage that wraps the seed between left and right.
func Surround(left, right string) Generator {
	return surround{left: left, right: right}
}

func (s surround) Transform(_ *rand.Rand, seed string) string {
	return s.left + seed + s.right
}

// SurroundPair is a left/right pair for RandomSurround.
type SurroundPair struct {
	Left  string
	Right string
}

// RandomSurround wraps the seed with one of pairs chosen uniformly per call.
func RandomSurround(pairs ...SurroundPair) (Generator, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptySurround
	}
	options := make([]Generator, len(pairs))
	for i, p := range pairs {
		options[i] = Surround(p.Left, p.Right)
	}
	return Switch(options...), nil
}
