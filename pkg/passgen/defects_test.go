package passgen_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/passgen"
)

func TestSymbolDefectsSingleCharacter(t *testing.T) {
	t.Parallel()

	d, err := passgen.SymbolDefects(1, 1)
	require.NoError(t, err)
	rng := passgen.NewSeededRand(1)

	cases := map[string]string{
		"A": "4",
		"E": "3",
		"Q": "0",
		"J": "1",
		"Z": "2",
		"q": "9",
		"F": "+",
		"H": "#",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			for range 20 {
				assert.Equal(t, want, d.Transform(rng, in))
			}
		})
	}
}

func TestSymbolDefectsOverlappingKeys(t *testing.T) {
	t.Parallel()

	d, err := passgen.SymbolDefects(1, 1)
	require.NoError(t, err)

	// 'L' is registered by both the "LlIJ"→"1" and "LVv"→"7^" groups; the
	// later group wins.
	candidates, ok := d.Candidates('L')
	require.True(t, ok)
	assert.Equal(t, []rune("7^"), candidates)

	rng := passgen.NewSeededRand(2)
	for range 50 {
		assert.Contains(t, []string{"7", "^"}, d.Transform(rng, "L"))
	}

	lower, ok := d.Candidates('l')
	require.True(t, ok)
	assert.Equal(t, []rune("1"), lower)
}

func TestNewSubstitutionsLastGroupWins(t *testing.T) {
	t.Parallel()

	table, err := passgen.NewSubstitutions(
		passgen.SubstitutionGroup{From: "ab", To: "1"},
		passgen.SubstitutionGroup{From: "b", To: "23"},
	)
	require.NoError(t, err)
	assert.Equal(t, passgen.Substitutions{'a': []rune("1"), 'b': []rune("23")}, table)

	_, err = passgen.NewSubstitutions(passgen.SubstitutionGroup{From: "a", To: ""})
	require.ErrorIs(t, err, passgen.ErrEmptySubstitutions)

	_, err = passgen.NewSubstitutions()
	require.ErrorIs(t, err, passgen.ErrEmptySubstitutions)
}

func TestNewDefectsValidation(t *testing.T) {
	t.Parallel()

	table := passgen.Substitutions{'a': []rune("b")}

	_, err := passgen.NewDefects(table, 2, 1)
	require.ErrorIs(t, err, passgen.ErrInvalidDefectRange)

	_, err = passgen.NewDefects(table, -1, 1)
	require.ErrorIs(t, err, passgen.ErrNegativeCount)

	_, err = passgen.NewDefects(nil, 0, 1)
	require.ErrorIs(t, err, passgen.ErrEmptySubstitutions)

	_, err = passgen.NewDefects(passgen.Substitutions{'a': nil}, 0, 1)
	require.ErrorIs(t, err, passgen.ErrEmptySubstitutions)

	_, err = passgen.SymbolDefects(3, 1)
	require.ErrorIs(t, err, passgen.ErrInvalidDefectRange)

	_, err = passgen.VowelDefects(3, 1)
	require.ErrorIs(t, err, passgen.ErrInvalidDefectRange)
}

func TestNewDefectsCopiesTable(t *testing.T) {
	t.Parallel()

	table := passgen.Substitutions{'a': []rune("b")}
	d, err := passgen.NewDefects(table, 1, 1)
	require.NoError(t, err)

	table['a'][0] = 'z'
	table['c'] = []rune("d")

	assert.Equal(t, "b", d.Transform(passgen.NewSeededRand(1), "a"))
	assert.Equal(t, "c", d.Transform(passgen.NewSeededRand(1), "c"))
}

func TestVowelDefects(t *testing.T) {
	t.Parallel()

	d, err := passgen.VowelDefects(1, 1)
	require.NoError(t, err)
	rng := passgen.NewSeededRand(3)

	t.Run("lower-case vowels always change to another vowel", func(t *testing.T) {
		for _, in := range []string{"a", "e", "i", "o", "u"} {
			for range 20 {
				out := d.Transform(rng, in)
				assert.NotEqual(t, in, out)
				assert.Contains(t, "aeiou", out)
			}
		}
	})

	t.Run("upper-case vowels and consonants are untouched", func(t *testing.T) {
		for _, in := range []string{"A", "E", "I", "O", "U", "b", "c", "d", "f"} {
			assert.Equal(t, in, d.Transform(rng, in))
		}
	})
}

func TestAlphaDefects(t *testing.T) {
	t.Parallel()

	const (
		vowels     = "aeiouAEIOU"
		consonants = "bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ"
	)

	isUpper := func(r rune) bool { return unicode.IsUpper(r) }

	tests := []struct {
		name     string
		opts     []passgen.AlphaOption
		eligible string
		skipped  string
		targets  string
	}{
		{
			name:     "vowels by default",
			eligible: vowels,
			skipped:  consonants + "0! ",
			targets:  vowels,
		},
		{
			name:     "consonants into consonants",
			opts:     []passgen.AlphaOption{passgen.WithConsonants(), passgen.WithoutVowels()},
			eligible: consonants,
			skipped:  vowels + "7-",
			targets:  consonants,
		},
		{
			name:     "any letter",
			opts:     []passgen.AlphaOption{passgen.WithConsonants(), passgen.AnyLetter()},
			eligible: vowels + consonants,
			skipped:  "0123 _",
			targets:  vowels + consonants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := passgen.AlphaDefects(1, 1, tt.opts...)
			require.NoError(t, err)
			rng := passgen.NewSeededRand(31)

			for _, r := range tt.eligible {
				for range 10 {
					out := []rune(d.Transform(rng, string(r)))
					require.Len(t, out, 1)
					assert.NotEqual(t, r, out[0])
					assert.Contains(t, tt.targets, string(out[0]))
					assert.Equal(t, isUpper(r), isUpper(out[0]), "case of %q preserved", r)
				}
			}
			for _, r := range tt.skipped {
				_, ok := d.Candidates(r)
				assert.False(t, ok, "%q must not be eligible", r)
			}
		})
	}

	t.Run("any letter reaches the other class", func(t *testing.T) {
		d, err := passgen.AlphaDefects(1, 1, passgen.AnyLetter())
		require.NoError(t, err)
		candidates, ok := d.Candidates('E')
		require.True(t, ok)
		assert.Len(t, candidates, 25)
		assert.Contains(t, candidates, 'B')
		assert.NotContains(t, candidates, 'E')
	})

	t.Run("nothing eligible", func(t *testing.T) {
		_, err := passgen.AlphaDefects(1, 1, passgen.WithoutVowels())
		require.ErrorIs(t, err, passgen.ErrEmptySubstitutions)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := passgen.AlphaDefects(2, 1)
		require.ErrorIs(t, err, passgen.ErrInvalidDefectRange)
	})
}

func TestDefectsProperties(t *testing.T) {
	t.Parallel()

	symbols, err := passgen.SymbolDefects(0, 0)
	require.NoError(t, err)

	seeds := []string{
		"",
		"xyz",
		"HelloWorld",
		"AEIOU aeiou",
		"theQuickBrownFoxJumpsOverTheLazyDog42",
		"ünïcödé Straße",
		strings.Repeat("Aa", 20),
	}
	bounds := [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 3}, {2, 5}, {5, 5}, {0, 100}}

	rng := passgen.NewSeededRand(77)

	for _, build := range []struct {
		name string
		fn   func(min, max int) (*passgen.Defects, error)
	}{
		{"symbols", passgen.SymbolDefects},
		{"vowels", passgen.VowelDefects},
		{"letters", func(lo, hi int) (*passgen.Defects, error) {
			return passgen.AlphaDefects(lo, hi, passgen.WithConsonants(), passgen.AnyLetter())
		}},
	} {
		t.Run(build.name, func(t *testing.T) {
			for _, b := range bounds {
				d, err := build.fn(b[0], b[1])
				require.NoError(t, err)

				for _, seed := range seeds {
					in := []rune(seed)
					possible := 0
					for _, r := range in {
						if _, ok := d.Candidates(r); ok {
							possible++
						}
					}

					for range 30 {
						out := []rune(d.Transform(rng, seed))
						require.Len(t, out, len(in))

						diff := 0
						for i := range in {
							if in[i] == out[i] {
								continue
							}
							diff++
							candidates, ok := d.Candidates(in[i])
							require.True(t, ok, "non-eligible rune %q changed", in[i])
							assert.Contains(t, candidates, out[i])
						}

						// Substituted candidates can equal the original
						// only if a table maps a rune to itself; no
						// built-in table does, so every defect is visible.
						assert.LessOrEqual(t, diff, b[1])
						assert.GreaterOrEqual(t, diff, min(b[0], possible))
					}
				}
			}
		})
	}

	assert.Equal(t, "Hello", symbols.Transform(rng, "Hello"))
}

func TestDefectsCountDistribution(t *testing.T) {
	t.Parallel()

	d, err := passgen.VowelDefects(0, 2)
	require.NoError(t, err)
	rng := passgen.NewSeededRand(5)

	counts := map[int]int{}
	const trials = 6000
	for range trials {
		out := d.Transform(rng, "aaaa")
		counts[4-strings.Count(out, "a")]++
	}

	require.Len(t, counts, 3)
	for n := range 3 {
		assert.InDelta(t, 1.0/3, float64(counts[n])/trials, 0.04, "defect count %d", n)
	}
}

func TestDefectsNoEligiblePositions(t *testing.T) {
	t.Parallel()

	d, err := passgen.VowelDefects(3, 5)
	require.NoError(t, err)

	rng := passgen.NewSeededRand(9)
	assert.Equal(t, "", d.Transform(rng, ""))
	assert.Equal(t, "RHYTHM 123", d.Transform(rng, "RHYTHM 123"))

	out := d.Transform(rng, "xax")
	assert.NotEqual(t, "xax", out, "min defects clamps to the single eligible rune")
	assert.Equal(t, 'x', rune(out[0]))
	assert.Equal(t, 'x', rune(out[2]))
}

func BenchmarkSymbolDefects(b *testing.B) {
	d := passgen.Must(passgen.SymbolDefects(1, 3))
	rng := passgen.NewSeededRand(1)

	b.ReportAllocs()
	for b.Loop() {
		_ = d.Transform(rng, "TheQuickBrownFoxJumpsOverTheLazyDog")
	}
}
