// Package corpus turns raw text into the sampling pools used by the password
// stages in package passgen.
//
// A Corpus owns an immutable text body and derives two pools from it on first
// use:
//
//   - the word pool: the text is lower-cased, every rune that is not a letter
//     or a digit becomes a space, and the result is split on whitespace runs.
//   - the phrase pool: the text is lower-cased, every rune other than letters,
//     digits, '.', ',' and newline becomes a space, the result is split on '.'
//     and ',' and each segment is split on whitespace runs. Empty segments are
//     kept as zero-length phrases, so consumers must filter by length.
//
// The pools are computed at most once per Corpus and are safe to read from
// multiple goroutines. Accessors return copies; a Corpus never changes after
// New returns.
//
// # Usage
//
//	c := corpus.New("Hello, world. Foo bar.")
//	c.Words()   // ["hello" "world" "foo" "bar"]
//	c.Phrases() // [["hello"] ["world"] ["foo" "bar"] []]
//
// Length filters are applied by the consumer:
//
//	long := c.FilterWords(4)       // words with at least 4 runes
//	mid := c.FilterPhrases(3, 5)  // phrases with 3 to 5 tokens
//
// # Built-in corpora
//
// A few corpora ship with the package so that presets work without any file
// I/O: "nouns", "adjectives" and "alice" (the opening of Alice's Adventures in
// Wonderland). Use Builtin to load one by name and BuiltinNames to list them.
//
// The package never reads files; callers load text themselves and pass it to
// New.
package corpus
