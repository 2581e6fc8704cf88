package rpcconv

import (
	"log/slog"
)

// DefaultOnWarning logs a request warning with [slog.Warn].
// It is assigned to [Callbacks.OnWarning] by [NewClient].
var DefaultOnWarning = func(w *Warning) {
	slog.Warn("Malformed JSON-RPC request", "index", w.Index, "warning", w.Error())
}

// DefaultOnParseError logs a response body that is not JSON at debug level.
// It is assigned to [Callbacks.OnParseError] by [NewClient].
var DefaultOnParseError = func(body string, err error) {
	slog.Debug("JSON-RPC response is not JSON", "body", body, "error", err)
}

// Callbacks are invoked by a [Client] on events that do not stop processing.
// They may be called from several goroutines at once.
//
//	client.Callbacks.OnWarning = func(w *rpcconv.Warning) {
//	    metrics.Inc("rpc_request_warning")
//	    rpcconv.DefaultOnWarning(w)
//	}
type Callbacks struct {
	// OnWarning is called for every warning produced while building a
	// request batch, in order, before reject mode is applied.
	OnWarning func(w *Warning)

	// OnParseError is called when a response body is not valid JSON and
	// a parse error envelope is returned in its place.
	OnParseError func(body string, err error)
}

func (c *Callbacks) runOnWarning(w *Warning) {
	if c.OnWarning != nil {
		c.OnWarning(w)
	}
}

func (c *Callbacks) runOnParseError(body string, err error) {
	if c.OnParseError != nil {
		c.OnParseError(body, err)
	}
}
