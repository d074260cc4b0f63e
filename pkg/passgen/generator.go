package passgen

import "math/rand/v2"

// Generator is a single pipeline stage. Transform rewrites or extends the
// accumulated password seed using draws from rng. It must be total: every
// seed, including the empty string, yields a result.
type Generator interface {
	Transform(rng *rand.Rand, seed string) string
}

// Func adapts an ordinary function to the Generator interface.
type Func func(rng *rand.Rand, seed string) string

// Transform calls f(rng, seed).
func (f Func) Transform(rng *rand.Rand, seed string) string {
	return f(rng, seed)
}

// Generate runs g from an empty accumulator.
func Generate(g Generator, rng *rand.Rand) string {
	return g.Transform(rng, "")
}

// Must panics if err is non-nil. It is meant for pipelines assembled from
// constant parameters, e.g. passgen.Must(passgen.Digits(2)).
func Must[T Generator](g T, err error) T {
	if err != nil {
		panic("passgen: " + err.Error())
	}
	return g
}

type sequence struct {
	first, second Generator
}

// Pipe returns a stage that threads the accumulator through a and then b.
func Pipe(a, b Generator) Generator {
	return &sequence{first: a, second: b}
}

func (s *sequence) Transform(rng *rand.Rand, seed string) string {
	return s.second.Transform(rng, s.first.Transform(rng, seed))
}

type alternation struct {
	left, right Generator
}

// Or returns a stage that, on every call, flips a fair coin and delegates the
// whole accumulator to exactly one of a or b.
func Or(a, b Generator) Generator {
	return &alternation{left: a, right: b}
}

func (a *alternation) Transform(rng *rand.Rand, seed string) string {
	if rng.IntN(2) == 0 {
		return a.left.Transform(rng, seed)
	}
	return a.right.Transform(rng, seed)
}

// Chain pipes any number of stages left to right. An empty chain returns the
// seed unchanged.
func Chain(stages ...Generator) Generator {
	if len(stages) == 0 {
		return identity{}
	}
	g := stages[0]
	for _, next := range stages[1:] {
		g = Pipe(g, next)
	}
	return g
}

type choice struct {
	options []Generator
}

// Switch returns a stage that delegates each call to one of the options
// chosen uniformly at random. With no options it returns the seed unchanged.
func Switch(options ...Generator) Generator {
	switch len(options) {
	case 0:
		return identity{}
	case 1:
		return options[0]
	}
	return &choice{options: append([]Generator(nil), options...)}
}

func (c *choice) Transform(rng *rand.Rand, seed string) string {
	return c.options[rng.IntN(len(c.options))].Transform(rng, seed)
}

type identity struct{}

func (identity) Transform(_ *rand.Rand, seed string) string { return seed }
