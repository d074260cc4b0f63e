package passgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/passgen"
)

func TestSequenceNext(t *testing.T) {
	t.Parallel()

	seq := passgen.NewSequence(passgen.Constant("x"), passgen.NewSeededRand(1))
	for range 5 {
		assert.Equal(t, "x", seq.Next(), "every pull starts from an empty accumulator")
	}
}

func TestSequenceTake(t *testing.T) {
	t.Parallel()

	g := passgen.Must(passgen.AlphaNumeric(12))

	t.Run("non-positive n", func(t *testing.T) {
		seq := passgen.NewSequence(g, passgen.NewSeededRand(1))
		assert.Nil(t, seq.Take(0))
		assert.Nil(t, seq.Take(-3))
	})

	t.Run("matches repeated Next", func(t *testing.T) {
		a := passgen.NewSequence(g, passgen.NewSeededRand(4)).Take(10)
		b := passgen.NewSequence(g, passgen.NewSeededRand(4))
		require.Len(t, a, 10)
		for _, pw := range a {
			assert.Equal(t, pw, b.Next())
		}
	})

	t.Run("values differ", func(t *testing.T) {
		seen := map[string]bool{}
		for _, pw := range passgen.NewSequence(g, nil).Take(50) {
			seen[pw] = true
		}
		assert.Len(t, seen, 50)
	})
}

func TestSequenceAll(t *testing.T) {
	t.Parallel()

	seq := passgen.NewSequence(passgen.Must(passgen.Digits(4)), passgen.NewSeededRand(2))

	var got []string
	for pw := range seq.All() {
		got = append(got, pw)
		if len(got) == 7 {
			break
		}
	}
	require.Len(t, got, 7)
	for _, pw := range got {
		assert.Regexp(t, `^[0-9]{4}$`, pw)
	}

	// The iterator resumes where the previous loop stopped.
	ref := passgen.NewSequence(passgen.Must(passgen.Digits(4)), passgen.NewSeededRand(2)).Take(8)
	for pw := range seq.All() {
		assert.Equal(t, ref[7], pw)
		break
	}
}
