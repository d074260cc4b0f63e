// Package passgen builds memorable, high-entropy passwords out of small text
// transformation stages.
//
// Every stage implements Generator: it receives the password accumulated so
// far (the seed) and returns a new one. Stages are combined into a pipeline
// and the pipeline is pulled repeatedly through a Sequence, each pull starting
// from an empty accumulator.
//
// # Stages
//
//   - Constant, Surround, RandomSurround: fixed literals around or after the seed.
//   - NewRandomString and the presets Digits, Lowercase, Uppercase, Letters,
//     AlphaNumeric, Hexadecimal: random runes appended from an alphabet.
//   - UUID, ULID: random identifiers.
//   - NewWordSampler, NewWordRangeSampler, NewPhraseSampler: words or a
//     phrase drawn from a corpus.Corpus.
//   - Case (camel, capitalize, class, kebab, lower, screaming, sentence,
//     snake, table, title, upper) and RandomCase.
//   - NewDefects, SymbolDefects, VowelDefects, AlphaDefects: replace a
//     bounded random subset of eligible runes with look-alikes (A→4, E→3,
//     o→0, a→e, …).
//
// # Composition
//
// Pipe(a, b) threads the seed through a then b. Or(a, b) flips a fair coin on
// every call and runs only one side. Chain and Switch are the n-ary forms.
// Combinators own their children; a pipeline is a tree without sharing.
//
// # Randomness
//
// Stages hold no random state. The *rand.Rand passed to Transform is the only
// source of randomness, so one pipeline can serve several goroutines as long
// as each goroutine uses its own source:
//
//	rng := passgen.NewRand()          // ChaCha8, seeded from crypto/rand
//	rng := passgen.NewSeededRand(42)  // reproducible
//
// The package makes no cryptographic guarantee beyond the quality of the
// source it is given.
//
// # Usage
//
//	text, _ := corpus.Builtin("alice")
//	phrase := passgen.Must(passgen.NewPhraseSampler(text, 3, 4))
//	symbols := passgen.Must(passgen.SymbolDefects(1, 1))
//	vowels := passgen.Must(passgen.VowelDefects(1, 1))
//	digits := passgen.Must(passgen.Digits(2))
//
//	pipeline := passgen.Chain(phrase, passgen.CaseCamel, passgen.Or(symbols, vowels), digits)
//
//	seq := passgen.NewSequence(pipeline, passgen.NewRand())
//	for _, pw := range seq.Take(5) {
//	    fmt.Println(pw)
//	}
//
// # Error Handling
//
// Constructors validate their parameters and return sentinel errors
// (ErrEmptyAlphabet, ErrEmptyWordPool, ErrEmptyPhrasePool,
// ErrInvalidDefectRange, …) that can be matched with errors.Is. Once built,
// a stage never fails: Transform is total for every input string.
package passgen
