package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase85Alphabet(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	tassert.Len(Base85Alphabet, 85)

	seen := map[rune]bool{}
	for _, r := range Base85Alphabet {
		tassert.False(seen[r], "duplicate %q", r)
		seen[r] = true
	}

	tassert.NotContains(Base85Alphabet, `"`)
	tassert.NotContains(Base85Alphabet, `$`)
	tassert.NotContains(Base85Alphabet, `\`)
	tassert.NotContains(Base85Alphabet, "`")
	tassert.NotContains(Base85Alphabet, "'")
}

func TestBase85Encode(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	got, err := Base85Encode("\x00\x00\x00\x00", false)
	tassert.NoError(err)
	tassert.Equal("!!!!!", got)

	got, err = Base85Encode("\x00", false)
	tassert.NoError(err)
	tassert.Equal("!!", got)

	got, err = Base85Encode("", false)
	tassert.NoError(err)
	tassert.Empty(got)

	_, err = Base85Encode("日", false)
	tassert.ErrorIs(err, ErrCodePointRange)
}

func TestBase85RoundTrip(t *testing.T) {
	t.Parallel()

	all := []rune(allBytes())

	for n := 0; n <= 9; n++ {
		in := string(all[len(all)-n:])

		enc, err := Base85Encode(in, false)
		require.NoError(t, err)
		assert.Len(t, enc, n+(n+3)/4, "length for %d bytes", n)

		dec, err := Base85Decode(enc, false)
		require.NoError(t, err)
		assert.Equal(t, in, dec)
	}

	for _, in := range unicodeSamples {
		enc, err := Base85Encode(in, true)
		require.NoError(t, err)

		dec, err := Base85Decode(enc, true)
		require.NoError(t, err)
		assert.Equal(t, in, dec)
	}
}

func TestBase85DecodeInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`ab"cd`, "ab$cd", "ab cd", "abé"} {
		_, err := Base85Decode(in, false)
		assert.ErrorIs(t, err, ErrInvalidCharacters, in)
	}
}
