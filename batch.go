package rpcconv

import (
	"slices"
)

// idable is used to allow easier access to the ID field inside a Batch.
type idable interface {
	id() ID
}

// Batchable represents types that can be used in a batch.
type Batchable interface {
	*Request | *Response
	idable
}

// Batch is an ordered collection of requests or responses.
//
// See: https://www.jsonrpc.org/specification#batch
type Batch[B Batchable] []B

// NewBatch creates a new, empty [Batch] with capacity size.
func NewBatch[B Batchable](size int) Batch[B] {
	return make(Batch[B], 0, size)
}

// BatchCorrelate pairs requests and responses by id.
//
// correlated is called once per request, with the matching response or nil,
// and then once for every response that matched no request, with a nil
// request. Responses are matched at most once, so duplicate ids pair in
// order. Returning false stops the walk.
//
//	rpcconv.BatchCorrelate(prepared.Batch, responses, func(req *rpcconv.Request, res *rpcconv.Response) bool {
//	    if req != nil && res == nil {
//	        log.Printf("no reply for %v", req.ID.Value())
//	    }
//	    return true
//	})
func BatchCorrelate(requests Batch[*Request], responses Batch[*Response], correlated func(req *Request, res *Response) (cont bool)) {
	matched := make([]bool, len(responses))

	for _, req := range requests {
		var res *Response

		for i, candidate := range responses {
			if matched[i] {
				continue
			}

			if reqID := req.id(); reqID.Equal(candidate.id()) {
				matched[i] = true
				res = candidate

				break
			}
		}

		if !correlated(req, res) {
			return
		}
	}

	for i, res := range responses {
		if !matched[i] && !correlated(nil, res) {
			return
		}
	}
}

// Add appends one or more items to the Batch.
func (b *Batch[B]) Add(v ...B) {
	*b = append(*b, v...)
}

// Grow increases the batch's capacity, if necessary, to guarantee space for
// another n elements. See [slices.Grow].
func (b *Batch[B]) Grow(n int) {
	*b = slices.Grow(*b, n)
}

// Contains reports whether the batch holds an element with the given [ID].
// Zero, null and malformed ids are never found.
func (b *Batch[B]) Contains(id ID) bool {
	return b.Index(id) >= 0
}

// Index returns the index of the first element matching id, or -1.
// Zero, null and malformed ids are never found.
func (b *Batch[B]) Index(id ID) int {
	if !id.IsValid() || id.IsNull() {
		return -1
	}

	for i, v := range *b {
		if id.Equal(v.id()) {
			return i
		}
	}

	return -1
}

// Get returns the first element matching id.
func (b *Batch[B]) Get(id ID) (B, bool) {
	i := b.Index(id)
	if i < 0 {
		var zero B
		return zero, false
	}

	return (*b)[i], true
}

// Delete removes and returns the first element matching id, keeping the
// order of the rest.
func (b *Batch[B]) Delete(id ID) (B, bool) {
	i := b.Index(id)
	if i < 0 {
		var zero B
		return zero, false
	}

	deleted := (*b)[i]
	*b = slices.Delete(*b, i, i+1)

	return deleted, true
}
