package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase91RoundTrip(t *testing.T) {
	t.Parallel()

	for _, escape := range []bool{false, true} {
		opts := Base91Options{Escape: escape}

		enc, err := Base91Encode(allBytes(), opts)
		require.NoError(t, err)

		dec, err := Base91Decode(enc, opts)
		require.NoError(t, err)
		assert.Equal(t, allBytes(), dec)

		opts.UTF8 = true

		for _, in := range unicodeSamples {
			enc, err := Base91Encode(in, opts)
			require.NoError(t, err)

			dec, err := Base91Decode(enc, opts)
			require.NoError(t, err)
			assert.Equal(t, in, dec)
		}
	}
}

func TestBase91Escape(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	plain, err := Base91Encode(allBytes(), Base91Options{})
	tassert.NoError(err)
	tassert.True(strings.ContainsAny(plain, "\"$`"), "sample should exercise the escapes")

	escaped, err := Base91Encode(allBytes(), Base91Options{Escape: true})
	tassert.NoError(err)
	tassert.False(strings.ContainsAny(escaped, "\"$`"))
	tassert.Equal(plain, base91Unescaper.Replace(escaped))
}

func TestBase91Errors(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	got, err := Base91Encode("", Base91Options{})
	tassert.NoError(err)
	tassert.Empty(got)

	got, err = Base91Decode("", Base91Options{})
	tassert.NoError(err)
	tassert.Empty(got)

	_, err = Base91Encode("日", Base91Options{})
	tassert.ErrorIs(err, ErrCodePointRange)

	_, err = Base91Decode("ab'cd", Base91Options{})
	tassert.ErrorIs(err, ErrInvalidData)
}
