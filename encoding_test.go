package rpcconv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrb3942/rpcconv/codec"
)

func TestEncoder(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)

	var plain bytes.Buffer
	tassert.NoError(NewEncoder(&plain, Transfer{}).Encode(map[string]string{"a": "<b>"}))
	tassert.Equal("{\"a\":\"<b>\"}\n", plain.String())

	var encoded bytes.Buffer
	tassert.NoError(NewEncoder(&encoded, Transfer{Name: "base64"}).Encode(map[string]int{"a": 1}))
	tassert.Equal("eyJhIjoxfQ==", encoded.String())

	var failed bytes.Buffer
	err := NewEncoder(&failed, Transfer{Name: "base64"}).Encode("€")
	tassert.ErrorIs(err, ErrEncoding)
	tassert.ErrorIs(err, codec.ErrCodePointRange)
	tassert.Zero(failed.Len())

	tassert.ErrorIs(NewEncoder(&failed, Transfer{Name: "hex"}).Encode(make(chan int)), ErrEncoding)
}

func TestDecoder(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)
	trequire := require.New(t)

	var v map[string]int

	dec := NewDecoder(strings.NewReader("  eyJhIjoxfQ==\n"), Transfer{Name: "base64"})
	trequire.NoError(dec.Decode(&v))
	tassert.Equal(map[string]int{"a": 1}, v)

	dec = NewDecoder(strings.NewReader("[1,"), Transfer{})
	tassert.ErrorIs(dec.Decode(&v), ErrDecoding)
}

func TestDecoderLimit(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr error
	}{
		{"under", "123", 4, nil},
		{"exact", "1234", 4, nil},
		{"over", "12345", 4, ErrJSONTooLarge},
		{"disabled", "12345", 0, nil},
		{"negative", "12345", -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := NewDecoder(strings.NewReader(tt.body), Transfer{})
			dec.SetLimit(tt.limit)

			body, err := dec.ReadBody()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.body, body)
		})
	}
}
