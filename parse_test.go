package rpcconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name string
		text string
		want any
	}{
		{"empty", "", map[string]any{}},
		{"blank", " \r\n\t", map[string]any{}},
		{"object", `{"jsonrpc":"2.0","result":1,"id":1}`, map[string]any{"jsonrpc": "2.0", "result": float64(1), "id": float64(1)}},
		{"array with bom", "\ufeff[1, \"a\"]\n", []any{float64(1), "a"}},
		{"scalar", ` "x" `, "x"},
		{"null", "null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseResponse(tt.text))
		})
	}
}

func TestParseResponseEnvelope(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name string
		text string
		want string
	}{
		{"text", "not json", `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error","data":"\"not json\""},"id":null}`},
		{"trimmed", "  oops \n", `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error","data":"\"oops\""},"id":null}`},
		{"html", `<a href="x">`, `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error","data":"\"<a href=\\\"x\\\">\""},"id":null}`},
		{"truncated", `{"id":1`, `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error","data":"\"{\\\"id\\\":1\""},"id":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, ok := ParseResponse(tt.text).(*Response)
			require.True(t, ok)
			assert.True(t, res.IsError())

			buf, err := Marshal(res)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(buf))
		})
	}
}

func TestDecodeResponses(t *testing.T) {
	t.Parallel()
	tassert := assert.New(t)
	trequire := require.New(t)

	single, isSingle, err := DecodeResponses([]byte(`{"jsonrpc":"2.0","result":"ok","id":"a"}`))
	trequire.NoError(err)
	tassert.True(isSingle)
	trequire.Len(single, 1)
	tassert.True(single.Contains(NewID("a")))

	many, isSingle, err := DecodeResponses([]byte(` [{"jsonrpc":"2.0","result":1,"id":1},{"jsonrpc":"2.0","error":{"code":-32601,"message":"Method not found"},"id":2}]`))
	trequire.NoError(err)
	tassert.False(isSingle)
	trequire.Len(many, 2)
	tassert.True(many[1].IsError())

	_, _, err = DecodeResponses([]byte(`5`))
	tassert.ErrorIs(err, ErrDecoding)

	_, _, err = DecodeResponses([]byte(`{"jsonrpc":"1.0","result":1,"id":1}`))
	tassert.ErrorIs(err, ErrDecoding)
	tassert.ErrorIs(err, ErrWrongProtocolVersion)
}
