package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Encode(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name string
		in   string
		utf8 bool
		want string
	}{
		{"empty", "", false, ""},
		{"one byte", "a", false, "YQ=="},
		{"two bytes", "ab", false, "YWI="},
		{"three bytes", "abc", false, "YWJj"},
		{"latin1", "café", false, "Y2Fm6Q=="},
		{"utf8", "café", true, "Y2Fmw6k="},
		{"high bytes", "ûÿ", false, "+/8="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Base64Encode(tt.in, tt.utf8)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBase64EncodeRejectsWideRunes(t *testing.T) {
	t.Parallel()

	_, err := Base64Encode("日本語", false)
	assert.ErrorIs(t, err, ErrCodePointRange)
}

func TestBase64Decode(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"empty", "", "", nil},
		{"padded", "YQ==", "a", nil},
		{"unpadded", "YQ", "a", nil},
		{"single pad", "YWI=", "ab", nil},
		{"single pad omitted", "YWI", "ab", nil},
		{"trailing bits ignored", "YR==", "a", nil},
		{"invalid character", "abc!", "", ErrInvalidCharacters},
		{"url alphabet", "-_8=", "", ErrInvalidCharacters},
		{"whitespace", "YQ ==", "", ErrInvalidCharacters},
		{"length 1 mod 4", "YWJjZ", "", ErrInvalidData},
		{"partial padding", "YQ=", "", ErrInvalidData},
		{"interior padding", "YQ==YQ==", "", ErrInvalidData},
		{"too much padding", "Y===", "", ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Base64Decode(tt.in, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "", got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBase64DecodeUTF8(t *testing.T) {
	t.Parallel()

	got, err := Base64Decode("Y2Fmw6k=", true)
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	// 0xE9 alone is not UTF-8.
	_, err = Base64Decode("Y2Fm6Q==", true)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestBase64URL(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	got, err := Base64URLEncode("ûÿ", false)
	tassert.NoError(err)
	tassert.Equal("-_8", got)

	got, err = Base64URLDecode("-_8", false)
	tassert.NoError(err)
	tassert.Equal("ûÿ", got)

	got, err = Base64URLDecode("YQ", false)
	tassert.NoError(err)
	tassert.Equal("a", got)

	_, err = Base64URLDecode("abcde", false)
	tassert.ErrorIs(err, ErrInvalidData)

	_, err = Base64URLDecode("ab!c", false)
	tassert.ErrorIs(err, ErrInvalidCharacters)

	tassert.Equal("-_8", Base64ToBase64URL("+/8="))
	tassert.Equal("+/8=", Base64URLToBase64("-_8"))
	tassert.Equal("", Base64ToBase64URL(""))
	tassert.Equal("", Base64URLToBase64(""))
}

func TestBase64Bytes(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	b := []byte{0, 1, 2, 0xfe, 0xff}

	b64 := BytesToBase64(b)
	tassert.Equal("AAEC/v8=", b64)

	back, err := Base64ToBytes(b64)
	tassert.NoError(err)
	tassert.Equal(b, back)

	b64url := BytesToBase64URL(b)
	tassert.Equal("AAEC_v8", b64url)

	back, err = Base64URLToBytes(b64url)
	tassert.NoError(err)
	tassert.Equal(b, back)
}
