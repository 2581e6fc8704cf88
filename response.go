package rpcconv

// Response represents a JSON-RPC 2.0 response object.
//
// A response carries either a [Result] or an [Error]. Marshalling keeps the
// member order jsonrpc, result or error, id.
//
// See: https://www.jsonrpc.org/specification#response_object
//
//nolint:govet //Order matches the JSON-RPC 2.0 examples
type Response struct {
	Jsonrpc Version `json:"jsonrpc"`
	Result  Result  `json:"result,omitempty,omitzero"`
	Error   Error   `json:"error,omitempty,omitzero"`
	ID      ID      `json:"id"`
}

// NewResponseWithResult creates a successful response for id.
//
//	resp := rpcconv.NewResponseWithResult(int64(1), "pong")
//	// Marshals to: {"jsonrpc":"2.0","result":"pong","id":1}
func NewResponseWithResult[I int64 | string](id I, r any) *Response {
	return &Response{ID: NewID(id), Result: NewResult(r)}
}

// NewResponseWithError creates an error response for id.
//
// If e is already an [Error] it is used directly. Otherwise e is wrapped in
// [ErrInternalError] and its text becomes the data member.
//
//	resp := rpcconv.NewResponseWithError("req-01", rpcconv.NewError(100, "Resource not found"))
//	// Marshals to: {"jsonrpc":"2.0","error":{"code":100,"message":"Resource not found"},"id":"req-01"}
func NewResponseWithError[I int64 | string](id I, e error) *Response {
	return &Response{ID: NewID(id), Error: asError(e)}
}

// NewResponseError creates an error response with a null id, for requests
// whose id could not be determined.
//
//	resp := rpcconv.NewResponseError(rpcconv.ErrParse.WithData("Invalid JSON received"))
//	// Marshals to: {"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error","data":"Invalid JSON received"},"id":null}
func NewResponseError(e error) *Response {
	return &Response{ID: NewNullID(), Error: asError(e)}
}

// IsError returns true if the response contains an [Error] object.
func (r *Response) IsError() bool {
	return !r.Error.IsZero()
}

func (r *Response) id() ID {
	return r.ID
}
