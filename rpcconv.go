// Package rpcconv shapes [JSON-RPC 2.0] requests and parses responses for
// clients that move their bodies through textual transfer encodings.
//
// # Overview
//
// The package does not perform any network I/O. A [Client] turns calls into a
// request batch, reports malformed input as warnings, computes the HTTP header
// values a peer expects and writes the body through the configured transfer
// encoding (base64, base64url, obfuscate or any codec registered in the
// [github.com/rrb3942/rpcconv/codec] package). Responses are read back through
// the same encoding and parsed leniently: a body that is not JSON becomes a
// JSON-RPC parse error envelope instead of a Go error.
//
// # Features
//
//   - Automatic, per-client request ids ([Client.SetIDGenerator] swaps the source).
//   - Warnings for malformed requests, optionally fatal ([ClientConfig.RejectWarnings]).
//   - Loosely typed input via [Client.BuildJSON], typed input via [Client.Build] or a [BatchBuilder].
//   - Request and response pairing with [BatchCorrelate].
//   - Transfer encodings selected by name, see [ParseTransfer].
//   - Pluggable JSON Libraries: Replace the standard `encoding/json` by overriding package-level variables ([Marshal], [Unmarshal], [NewJSONEncoder], [NewJSONDecoder]).
//   - YAML client configuration via [LoadClientConfig].
//
// # Basic Usage
//
//	client, err := rpcconv.NewClient(rpcconv.ClientConfig{Encoding: "base64-utf8"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	prepared, err := client.Build(
//		rpcconv.Call{Method: "echo", Params: []any{"hello"}},
//		rpcconv.Call{Method: "time"},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, w := range prepared.Warnings {
//		log.Printf("warning: %v", w)
//	}
//
//	req, _ := http.NewRequest(http.MethodPost, url, nil)
//	req.Header = client.Header()
//
//	var body bytes.Buffer
//	if err := client.Encode(&body, prepared); err != nil {
//		log.Fatal(err)
//	}
//
// Reading the reply:
//
//	parsed, err := client.DecodeResponse(resp.Body)
//	if err != nil {
//		log.Fatal(err) // transfer decoding failed
//	}
//	// parsed is the decoded JSON, an empty object, or a *Response holding
//	// a -32700 parse error.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package rpcconv

import (
	"bytes"
	"encoding/json"
	"io"
)

var nullValue = json.RawMessage("null") // Represents the JSON `null` value.

// Marshal defines the function used for marshaling Go types into JSON []byte.
// By default it behaves like [encoding/json.Marshal] with HTML escaping
// disabled, so '<', '>' and '&' reach the peer as written. Applications can
// replace this variable *at startup* with a different marshaling function.
//
// The replacement function must have the same signature as `json.Marshal`
// and must honour [json.Marshaler] and the `omitzero` struct tag.
//
// Example (using sonic):
//
//	import "github.com/bytedance/sonic"
//
//	func init() {
//	    rpcconv.Marshal = sonic.ConfigDefault.Marshal
//	}
var Marshal = func(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal defines the function used for unmarshalling JSON []byte into Go types.
// By default, it uses [encoding/json.Unmarshal]. Applications can replace this
// variable *at startup* with a different unmarshalling function.
var Unmarshal = json.Unmarshal

// JSONEncoder defines the interface required for stream-based JSON encoding,
// compatible with [encoding/json.Encoder].
type JSONEncoder interface {
	// Encode writes the JSON encoding of v to the stream, followed by a newline character.
	Encode(v any) error
}

// NewJSONEncoder defines the function used to create new [JSONEncoder] instances.
// By default, it returns a standard [encoding/json.Encoder] with HTML escaping disabled.
var NewJSONEncoder = func(w io.Writer) JSONEncoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return enc
}

// JSONDecoder defines the interface required for stream-based JSON decoding,
// compatible with [encoding/json.Decoder].
type JSONDecoder interface {
	// Decode reads the next JSON-encoded value from its input and stores it in the value pointed to by v.
	Decode(v any) error
}

// NewJSONDecoder defines the function used to create new [JSONDecoder] instances.
// By default, it returns a standard [encoding/json.Decoder].
//
// Example (using sonic):
//
//	func init() {
//	    rpcconv.NewJSONDecoder = func(r io.Reader) rpcconv.JSONDecoder { return sonic.ConfigDefault.NewDecoder(r) }
//	}
var NewJSONDecoder = func(r io.Reader) JSONDecoder { return json.NewDecoder(r) }
