package rpcconv

import (
	"errors"
	"fmt"
)

// BatchBuilder collects calls for a single [Client.Build].
//
// BatchBuilder may be reused by calling Reset() to clear the collected calls.
// It is not goroutine-safe.
type BatchBuilder struct {
	parent *Client
	calls  []Call
}

// NewBatchBuilder returns a new [*BatchBuilder] building through c with room for size calls.
func (c *Client) NewBatchBuilder(size int) *BatchBuilder {
	return &BatchBuilder{parent: c, calls: make([]Call, 0, size)}
}

// Add queues a call of method with params and an automatic id.
//
// Params are marshalled immediately, so an unmarshalable value fails here
// rather than in Build. Params that are not an object or array are kept and
// reported as a warning by Build.
func (b *BatchBuilder) Add(method string, params any) error {
	p, err := NewParams(params)
	if err != nil && !errors.Is(err, ErrInvalidParameters) {
		return fmt.Errorf("request %d: %w", len(b.calls), err)
	}

	b.calls = append(b.calls, Call{Method: method, Params: p})

	return nil
}

// AddCall queues call as is.
func (b *BatchBuilder) AddCall(call Call) {
	b.calls = append(b.calls, call)
}

// Len returns the number of queued calls.
func (b *BatchBuilder) Len() int {
	return len(b.calls)
}

// Reset drops all queued calls, keeping the allocated space.
func (b *BatchBuilder) Reset() {
	clear(b.calls)
	b.calls = b.calls[:0]
}

// Build builds the queued calls through the parent [*Client]. See [Client.Build].
// The queued calls are kept.
func (b *BatchBuilder) Build() (*Prepared, error) {
	return b.parent.Build(b.calls...)
}
