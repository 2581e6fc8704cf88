package rpcconv

import (
	"fmt"
	"strings"
	"unicode"
)

// trimBody removes the whitespace a browser's String.prototype.trim would,
// including a byte order mark.
func trimBody(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

// ParseResponse parses a response body leniently.
//
// Surrounding whitespace is trimmed. An empty body returns an empty
// map[string]any. Valid JSON returns the decoded value (objects as
// map[string]any, arrays as []any, numbers as float64). Anything else returns
// the *Response built by [ParseErrorResponse].
func ParseResponse(text string) any {
	v, _ := parseResponse(text)

	return v
}

func parseResponse(text string) (any, error) {
	text = trimBody(text)

	if text == "" {
		return map[string]any{}, nil
	}

	var v any
	if err := Unmarshal([]byte(text), &v); err != nil {
		return ParseErrorResponse(text), err
	}

	return v, nil
}

// ParseErrorResponse returns the response that stands in for a body that is not JSON:
//
//	{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error","data":<text as a JSON string>},"id":null}
//
// The data member holds text quoted as a JSON string literal, so a body of
// `oops` gives "data":"\"oops\"".
func ParseErrorResponse(text string) *Response {
	quoted, err := Marshal(text)
	if err != nil {
		quoted = []byte(`""`)
	}

	return NewResponseError(ErrParse.WithData(string(quoted)))
}

// DecodeResponses decodes a single response object or an array of them.
// single reports whether raw held one object rather than an array.
func DecodeResponses(raw []byte) (responses Batch[*Response], single bool, err error) {
	switch HintType(raw) {
	case TypeObject:
		res := &Response{}
		if err := Unmarshal(raw, res); err != nil {
			return nil, false, fmt.Errorf("%w (%w)", ErrDecoding, err)
		}

		return Batch[*Response]{res}, true, nil
	case TypeArray:
		if err := Unmarshal(raw, &responses); err != nil {
			return nil, false, fmt.Errorf("%w (%w)", ErrDecoding, err)
		}

		return responses, false, nil
	}

	return nil, false, fmt.Errorf("%w: response is not an object or an array", ErrDecoding)
}
