package passgen_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/passgen"
)

func TestCaseApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    passgen.Case
		in   string
		want string
	}{
		{passgen.CaseCamel, "foo bar baz", "fooBarBaz"},
		{passgen.CaseCamel, "Foo-Bar_baz", "fooBarBaz"},
		{passgen.CaseCamel, "FooBarBaz", "fooBarBaz"},
		{passgen.CaseClass, "foo bar baz", "FooBarBaz"},
		{passgen.CaseClass, "fooBarBaz", "FooBarBaz"},
		{passgen.CaseKebab, "Foo Bar Baz", "foo-bar-baz"},
		{passgen.CaseKebab, "fooBarBaz", "foo-bar-baz"},
		{passgen.CaseLower, "Foo BAR baz", "foo bar baz"},
		{passgen.CaseUpper, "Foo bar", "FOO BAR"},
		{passgen.CaseScreaming, "foo bar baz", "FOO_BAR_BAZ"},
		{passgen.CaseSnake, "Foo Bar Baz", "foo_bar_baz"},
		{passgen.CaseSnake, "fooBar, baz.", "foo_bar_baz"},
		{passgen.CaseSentence, "FOO BAR baz", "Foo bar baz"},
		{passgen.CaseSentence, "hello", "Hello"},
		{passgen.CaseTitle, "foo bar baz", "Foo Bar Baz"},
		{passgen.CaseTitle, "foo_bar", "Foo Bar"},
		{passgen.CaseTable, "foo bar baz", "foo_bar_bazs"},
		{passgen.CaseTable, "Rabbit Hole", "rabbit_holes"},
		{passgen.CaseTable, "tea party", "tea_parties"},
		{passgen.CaseTable, "looking glass", "looking_glasses"},
		{passgen.CaseTable, "white box", "white_boxes"},
		{passgen.CaseTable, "queen day", "queen_days"},
		{passgen.CaseTable, "old cards", "old_cards"},
		{passgen.CaseTable, "pop quiz", "pop_quizzes"},
		{passgen.CaseCapitalize, "oh DEAR, oh dear!", "Oh dear, oh dear!"},
		{passgen.CaseCapitalize, "ünïcödé", "Ünïcödé"},
		{passgen.CaseCapitalize, "", ""},
		{passgen.CaseCamel, "", ""},
		{passgen.CaseSnake, "  --  ", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.c)+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Apply(tt.in))
			assert.Equal(t, tt.want, tt.c.Transform(passgen.NewSeededRand(1), tt.in))
		})
	}
}

func TestCaseIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"foo",
		"foo bar baz",
		"The Rabbit Hole went Straight on",
		"oh dear, oh dear! I shall be late",
		"alreadyCamelCase",
		"SCREAMING_SNAKE_INPUT",
		"tea party",
		"looking glass",
	}

	for _, c := range passgen.Cases() {
		t.Run(string(c), func(t *testing.T) {
			for _, in := range inputs {
				once := c.Apply(in)
				assert.Equal(t, once, c.Apply(once), "input %q", in)
			}
		})
	}
}

func TestParseCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want passgen.Case
	}{
		{"camel", passgen.CaseCamel},
		{"CamelCase", passgen.CaseCamel},
		{"camel_case", passgen.CaseCamel},
		{"pascal", passgen.CaseClass},
		{"class", passgen.CaseClass},
		{"kebab-case", passgen.CaseKebab},
		{" lower ", passgen.CaseLower},
		{"screaming-snake", passgen.CaseScreaming},
		{"SCREAMING_SNAKE_CASE", passgen.CaseScreaming},
		{"sentence", passgen.CaseSentence},
		{"snake_case", passgen.CaseSnake},
		{"table", passgen.CaseTable},
		{"Title", passgen.CaseTitle},
		{"upper", passgen.CaseUpper},
		{"kebabcase", passgen.CaseKebab},
		{"snakecase", passgen.CaseSnake},
		{"Lowercase", passgen.CaseLower},
		{"capitalize", passgen.CaseCapitalize},
		{"Capitalized", passgen.CaseCapitalize},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := passgen.ParseCase(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("every canonical case round-trips", func(t *testing.T) {
		for _, c := range passgen.Cases() {
			got, err := passgen.ParseCase(string(c))
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		for _, name := range []string{"spongebob", "case", "_case", "camel-hump"} {
			_, err := passgen.ParseCase(name)
			require.ErrorIs(t, err, passgen.ErrUnknownCase, name)
		}

		g, err := passgen.CaseTransform("")
		require.ErrorIs(t, err, passgen.ErrUnknownCase)
		assert.Nil(t, g)
	})

	t.Run("transform", func(t *testing.T) {
		g, err := passgen.CaseTransform("kebab")
		require.NoError(t, err)
		assert.Equal(t, "oh-dear", g.Transform(passgen.NewSeededRand(1), "Oh dear"))
	})
}

func TestUnknownCasePassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Foo bar", passgen.Case("wobbly").Apply("Foo bar"))
}

func TestRandomCase(t *testing.T) {
	t.Parallel()

	g := passgen.RandomCase()
	rng := passgen.NewSeededRand(13)

	const seed = "abcdefghijklmnopqrstuvwxyz0123456789 !?"

	t.Run("only letter case changes", func(t *testing.T) {
		for range 100 {
			out := g.Transform(rng, seed)
			require.Equal(t, strings.ToLower(seed), strings.ToLower(out))
		}
	})

	t.Run("both cases appear", func(t *testing.T) {
		upper, lower := 0, 0
		for range 100 {
			for _, r := range g.Transform(rng, seed) {
				switch {
				case unicode.IsUpper(r):
					upper++
				case unicode.IsLower(r):
					lower++
				}
			}
		}
		total := float64(upper + lower)
		assert.InDelta(t, 0.5, float64(upper)/total, 0.05)
	})

	t.Run("empty seed", func(t *testing.T) {
		assert.Equal(t, "", passgen.Generate(g, rng))
	})
}
