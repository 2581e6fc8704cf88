package rpcconv

// Request represents a JSON-RPC request as it is sent to the peer.
//
//nolint:govet //Order matches the JSON-RPC 2.0 examples
type Request struct {
	Jsonrpc Version `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  Params  `json:"params,omitzero,omitempty"`
	ID      ID      `json:"id,omitzero"`
}

// NewRequest builds a new request for method with the given id.
func NewRequest[I int64 | string](id I, method string) *Request {
	return &Request{Method: method, ID: NewID(id)}
}

// NewRequestWithParams builds a new request for method with the given id, and the params set to p.
func NewRequestWithParams[I int64 | string](id I, method string, p Params) *Request {
	return &Request{Method: method, ID: NewID(id), Params: p}
}

// ResponseWithError constructs a response for the current [*Request] and populates the [Error] field.
// If e is of type Error it will be used directly.
// Other errors become [ErrInternalError] with the error string as data.
func (r *Request) ResponseWithError(e error) *Response {
	return &Response{ID: r.ID, Error: asError(e)}
}

// ResponseWithResult constructs a response for the current [*Request] and populates the [Result] with result.
func (r *Request) ResponseWithResult(result any) *Response {
	return &Response{ID: r.ID, Result: NewResult(result)}
}

func (r *Request) id() ID {
	return r.ID
}
