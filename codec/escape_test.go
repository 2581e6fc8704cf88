package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCIIEncode(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name string
		in   string
		opts EscapeOptions
		want string
	}{
		{"empty", "", EscapeOptions{}, ""},
		{"plain", "hello world", EscapeOptions{}, "hello world"},
		{"backslash", `a\b`, EscapeOptions{}, `a\\b`},
		{"control", "\x00\x1f\x7f", EscapeOptions{}, `\x00\x1F\x7F`},
		{"latin1", "é", EscapeOptions{}, `\xE9`},
		{"wide", "日", EscapeOptions{}, `\u{65e5}`},
		{"astral", "😀", EscapeOptions{}, `\u{1f600}`},
		{"quotes kept", "\"'`", EscapeOptions{}, "\"'`"},
		{"quotes escaped", "\"'`", EscapeOptions{EscapeQuotes: true}, `\x22\x27\x60`},
		{"utf8", "é", EscapeOptions{UTF8: true}, `\xC3\xA9`},
		{"utf8 wide", "日", EscapeOptions{UTF8: true}, `\xE6\x97\xA5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ASCIIEncode(tt.in, tt.opts))
		})
	}
}

func TestUnicodeEncode(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name string
		in   string
		opts EscapeOptions
		want string
	}{
		{"empty", "", EscapeOptions{}, ""},
		{"plain", "hello", EscapeOptions{}, "hello"},
		{"backslash", `a\b`, EscapeOptions{}, `a\\b`},
		{"control", "\x01\x7f", EscapeOptions{}, `\u{0001}\u{007f}`},
		{"latin1", "é", EscapeOptions{}, `\u{00e9}`},
		{"wide", "日😀", EscapeOptions{}, `\u{65e5}\u{1f600}`},
		{"quotes escaped", "\"'`", EscapeOptions{EscapeQuotes: true}, `\u{0022}\u{0027}\u{0060}`},
		{"utf8", "é", EscapeOptions{UTF8: true}, `\u{00c3}\u{00a9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UnicodeEncode(tt.in, tt.opts))
		})
	}
}

func TestASCIIDecode(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"byte escape", `\x41\xE9`, "Aé"},
		{"lower case digits", `\xe9`, "é"},
		{"upper case marker", `\X41\U{00E9}`, "Aé"},
		{"code point", `\u{65e5}\u{1f600}`, "日😀"},
		{"six digits", `\u{01f600}`, "😀"},
		{"escaped backslash before x", `\\x41`, `\x41`},
		{"escaped backslash then escape", `\\\x41`, `\A`},
		{"double escaped backslash", `\\\\`, `\\`},
		{"sentinel lookalike", `\SUB`, `\SUB`},
		{"too few digits", `\u{41}`, `\u{41}`},
		{"too many digits", `\u{0000041}`, `\u{0000041}`},
		{"unterminated", `\u{0041`, `\u{0041`},
		{"not hex", `\xZZ`, `\xZZ`},
		{"short", `\x4`, `\x4`},
		{"trailing backslash", `abc\`, `abc\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ASCIIDecode(tt.in, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestASCIIDecodeErrors(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	_, err := ASCIIDecode(`\u{110000}`, false)
	tassert.ErrorIs(err, ErrInvalidData)

	_, err = ASCIIDecode(`\u{d800}`, false)
	tassert.ErrorIs(err, ErrInvalidData)

	_, err = ASCIIDecode(`\xC3`, true)
	tassert.ErrorIs(err, ErrInvalidUTF8)

	got, err := ASCIIDecode(`\xC3\xA9`, true)
	tassert.NoError(err)
	tassert.Equal("é", got)
}

func TestUnicodeDecode(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	got, err := UnicodeDecode(`\u{0041}\u{00e9}\u{1F600}`, false)
	tassert.NoError(err)
	tassert.Equal("Aé😀", got)

	got, err = UnicodeDecode(`\x41`, false)
	tassert.NoError(err)
	tassert.Equal(`\x41`, got, "byte escapes belong to the ascii scheme")

	got, err = UnicodeDecode(`\\u{0041}`, false)
	tassert.NoError(err)
	tassert.Equal(`\u{0041}`, got)

	got, err = UnicodeDecode(`\u{00c3}\u{00a9}`, true)
	tassert.NoError(err)
	tassert.Equal("é", got)

	_, err = UnicodeDecode(`\u{ffffff}`, false)
	tassert.ErrorIs(err, ErrInvalidData)
}

func TestEscapeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := append([]string{allBytes(), `\\x41\u{0041}\SUB`}, unicodeSamples...)

	for _, in := range inputs {
		for _, quotes := range []bool{false, true} {
			opts := EscapeOptions{EscapeQuotes: quotes}

			got, err := ASCIIDecode(ASCIIEncode(in, opts), false)
			require.NoError(t, err)
			assert.Equal(t, in, got)

			got, err = UnicodeDecode(UnicodeEncode(in, opts), false)
			require.NoError(t, err)
			assert.Equal(t, in, got)

			opts.UTF8 = true

			got, err = ASCIIDecode(ASCIIEncode(in, opts), true)
			require.NoError(t, err)
			assert.Equal(t, in, got)

			got, err = UnicodeDecode(UnicodeEncode(in, opts), true)
			require.NoError(t, err)
			assert.Equal(t, in, got)
		}
	}
}

func TestEscapedOutputIsPrintableASCII(t *testing.T) {
	t.Parallel()

	for _, out := range []string{
		ASCIIEncode(allBytes(), EscapeOptions{}),
		UnicodeEncode(allBytes()+"日😀", EscapeOptions{EscapeQuotes: true}),
	} {
		for _, r := range out {
			assert.True(t, r >= 0x20 && r < 0x7f, "unexpected rune %#x", r)
		}
	}
}

func TestTildeEscape(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	tassert.Equal("~~~t~n~r~q~a~b~gx", TildeEscape("~\t\n\r\"'\\`x"))
	tassert.Equal("", TildeEscape(""))
	tassert.Equal("日本", TildeEscape("日本"))

	tassert.Equal("~\t\n\r\"'\\`x", TildeUnescape("~~~t~n~r~q~a~b~gx"))
	tassert.Equal("~t", TildeUnescape("~~t"), "escaped tilde must not start an escape")
	tassert.Equal("~x~", TildeUnescape("~x~"))
	tassert.Equal("~SUB", TildeUnescape("~SUB"))

	for _, in := range append([]string{allBytes(), "~~t~~~"}, unicodeSamples...) {
		tassert.Equal(in, TildeUnescape(TildeEscape(in)))
	}
}

func TestBackslashEscape(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	tassert.Equal(`\\\t\n\r\q\a\gx`, BackslashEscape("\\\t\n\r\"'`x"))
	tassert.Equal("~", BackslashEscape("~"))

	tassert.Equal("\\\t\n\r\"'`x", BackslashUnescape(`\\\t\n\r\q\a\gx`))
	tassert.Equal(`\t`, BackslashUnescape(`\\t`))
	tassert.Equal(`\b`, BackslashUnescape(`\b`))

	for _, in := range append([]string{allBytes(), `\\t\\\`}, unicodeSamples...) {
		tassert.Equal(in, BackslashUnescape(BackslashEscape(in)))
	}
}
