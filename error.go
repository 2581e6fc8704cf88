package rpcconv

import (
	"errors"
)

// Standard JSON-RPC 2.0 error objects.
var (
	ErrParse          = NewError(-32700, "Parse error")
	ErrInvalidRequest = NewError(-32600, "Invalid Request")
	ErrMethodNotFound = NewError(-32601, "Method not found")
	ErrInvalidParams  = NewError(-32602, "Invalid params")
	ErrInternalError  = NewError(-32603, "Internal error")
	ErrServerError    = NewError(-32000, "Server error")
)

// RPCError is the wire form of an [Error].
//
//nolint:govet //Order matches the parse error envelope
type RPCError struct {
	Code    int64     `json:"code"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data,omitempty,omitzero"`
}

// Error represents a JSON-RPC error object.
//
// [Error] implements the error interface and may be used as a normal error.
// Two errors match with [errors.Is] when their codes are equal.
type Error struct {
	present bool
	err     RPCError
}

// NewError returns a new [Error] with its Code and Message fields assigned to the given values.
func NewError(code int64, msg string) Error {
	return Error{present: true, err: RPCError{Code: code, Message: msg}}
}

// NewErrorWithData is the same as [NewError] but also sets the Data field.
func NewErrorWithData(code int64, msg string, data any) Error {
	return Error{present: true, err: RPCError{Code: code, Message: msg, Data: NewErrorData(data)}}
}

// asError returns e as an [Error]. Other errors become [ErrInternalError]
// with the error text as data.
func asError(e error) Error {
	var je Error

	if errors.As(e, &je) {
		return je
	}

	return ErrInternalError.WithData(e.Error())
}

// Code returns the code present in the error.
func (e *Error) Code() int64 {
	return e.err.Code
}

// Message returns the message present in the error.
func (e *Error) Message() string {
	return e.err.Message
}

// Data returns the data present in the error.
func (e *Error) Data() *ErrorData {
	return &e.err.Data
}

// WithData returns a copy of the current [Error] with its Data field set to data.
func (e *Error) WithData(data any) Error {
	return NewErrorWithData(e.err.Code, e.err.Message, data)
}

// Is reports whether t is an [Error] with the same code.
func (e Error) Is(t error) bool {
	switch jerr := t.(type) {
	case Error:
		return e.err.Code == jerr.err.Code
	case *Error:
		return jerr != nil && e.err.Code == jerr.err.Code
	}

	return false
}

// IsZero returns true if the error is empty.
func (e *Error) IsZero() bool {
	return !e.present
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.err.Message
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *Error) UnmarshalJSON(b []byte) error {
	if err := Unmarshal(b, &e.err); err != nil {
		return err
	}

	e.present = true

	return nil
}

// MarshalJSON implements [json.Marshaler].
func (e *Error) MarshalJSON() ([]byte, error) {
	return Marshal(&e.err)
}
