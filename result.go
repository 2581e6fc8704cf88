package rpcconv

// Result represents the result member of a successful [Response].
//
// Result is an alias for [Data]. A decoded result is kept as a
// [json.RawMessage]; use [Data.Unmarshal] to decode it into a Go type.
type Result = Data

// NewResult creates a new [Result] holding v. A nil v marshals as `null`.
func NewResult(v any) Result {
	return Result{present: true, value: v}
}
