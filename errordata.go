package rpcconv

// ErrorData represents the data member of a JSON-RPC error object.
type ErrorData = Data

// NewErrorData returns a new ErrorData with its value set to v.
//
// See [Data] for how values are handled.
func NewErrorData(v any) ErrorData {
	return ErrorData{present: true, value: v}
}
