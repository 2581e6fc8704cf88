package rpcconv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
)

// Request warnings. Their text is part of the wire contract with existing
// clients and must not change.
var (
	ErrRequestNotObject = errors.New("request is not defined or is not an object")
	ErrMethodNotString  = errors.New("method is not defined or is not a string")
	ErrIDNotScalar      = errors.New("id is not a string, a number or null")
	ErrMultipleWarnings = errors.New("request contains multiple warnings")
)

var (
	// ErrEmptyBatch is returned when there is nothing to build.
	ErrEmptyBatch = errors.New("requests is an empty array")
	// ErrNotRequest is returned by [Client.BuildJSON] when the input is neither an object nor an array.
	ErrNotRequest = errors.New("request is not an object")
)

// Call is one request to build. A zero ID is replaced with the client's next automatic id.
//
//	rpcconv.Call{Method: "sum", Params: []int{1, 2}}
//	rpcconv.Call{Method: "ping", ID: rpcconv.NewID("ping-1")}
type Call struct {
	Method string
	Params any
	ID     ID
}

// Warning reports a malformed request that was still built.
// Its text is exactly the text of Err.
type Warning struct {
	Err   error
	Index int // position of the request in the input
}

func (w *Warning) Error() string {
	return w.Err.Error()
}

func (w *Warning) Unwrap() error {
	return w.Err
}

// WarningsError is returned in reject mode when more than one warning was produced.
// It matches [ErrMultipleWarnings] and each warning with [errors.Is].
type WarningsError struct {
	Warnings []*Warning
}

func (e *WarningsError) Error() string {
	return ErrMultipleWarnings.Error()
}

func (e *WarningsError) Unwrap() []error {
	errs := make([]error, 0, len(e.Warnings)+1)
	errs = append(errs, ErrMultipleWarnings)

	for _, w := range e.Warnings {
		errs = append(errs, w)
	}

	return errs
}

// Prepared is a built request batch ready to be encoded.
type Prepared struct {
	Batch    Batch[*Request]
	Warnings []*Warning
}

func (p *Prepared) warn(index int, err error) {
	p.Warnings = append(p.Warnings, &Warning{Index: index, Err: err})
}

func (p *Prepared) batch() Batch[*Request] {
	if p.Batch == nil {
		return Batch[*Request]{}
	}

	return p.Batch
}

// Payload returns the JSON text of the batch. It is always a JSON array,
// even when it holds a single request.
func (p *Prepared) Payload() ([]byte, error) {
	buf, err := Marshal(p.batch())
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", ErrEncoding, err)
	}

	return buf, nil
}

// Client shapes JSON-RPC requests and parses responses. It performs no I/O of its own.
//
// Client is goroutine-safe. Callbacks should be assigned before first use.
type Client struct {
	Callbacks Callbacks

	config   ClientConfig
	transfer Transfer
	ids      counter

	mu  sync.RWMutex
	gen IDGenerator
}

// NewClient returns a new [*Client] for cfg with the default [Callbacks].
// It fails if cfg.Encoding names no known transfer encoding.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg = cfg.withDefaults()

	t, err := ParseTransfer(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	t.Key = cfg.ObfuscateKey

	return &Client{
		Callbacks: Callbacks{OnWarning: DefaultOnWarning, OnParseError: DefaultOnParseError},
		config:    cfg,
		transfer:  t,
	}, nil
}

// Config returns the configuration with defaults applied.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Transfer returns the transfer encoding parsed from the configuration.
func (c *Client) Transfer() Transfer {
	return c.transfer
}

// SetIDGenerator replaces the source of automatic ids. A nil g restores the
// default counter, which continues from where it stopped.
func (c *Client) SetIDGenerator(g IDGenerator) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen = g
}

func (c *Client) nextID() ID {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	if gen != nil {
		return gen()
	}

	return c.ids.next()
}

// Build normalises calls into a request batch.
//
// An empty method and params that do not encode to a JSON object or array
// produce warnings; the request is still built with the values given.
// Params that cannot be marshalled at all fail the build.
func (c *Client) Build(calls ...Call) (*Prepared, error) {
	if len(calls) == 0 {
		return nil, ErrEmptyBatch
	}

	p := &Prepared{Batch: NewBatch[*Request](len(calls))}

	for i, call := range calls {
		if call.Method == "" {
			p.warn(i, ErrMethodNotString)
		}

		params, err := NewParams(call.Params)
		if errors.Is(err, ErrInvalidParameters) {
			p.warn(i, ErrInvalidParameters)
		} else if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}

		id := call.ID
		if id.IsZero() {
			id = c.nextID()
		}

		p.Batch.Add(&Request{Method: call.Method, Params: params, ID: id})
	}

	return c.finish(p)
}

// BuildJSON normalises loosely typed requests: one JSON object, or an array of them.
//
// Entries that are not objects are skipped with a warning. A method that is
// missing, empty or not a string is sent as "". Params and ids of the wrong
// JSON type are forwarded verbatim after a warning. A missing id is replaced
// with the next automatic id; an explicit null is kept.
func (c *Client) BuildJSON(raw []byte) (*Prepared, error) {
	var entries []json.RawMessage

	switch HintType(raw) {
	case TypeObject:
		entries = []json.RawMessage{raw}
	case TypeArray:
		if err := Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("%w (%w)", ErrDecoding, err)
		}
	default:
		return nil, ErrNotRequest
	}

	if len(entries) == 0 {
		return nil, ErrEmptyBatch
	}

	p := &Prepared{Batch: NewBatch[*Request](len(entries))}

	for i, entry := range entries {
		if HintType(entry) != TypeObject {
			p.warn(i, ErrRequestNotObject)
			continue
		}

		req, err := c.requestFromJSON(p, i, entry)
		if err != nil {
			return nil, err
		}

		p.Batch.Add(req)
	}

	return c.finish(p)
}

func (c *Client) requestFromJSON(p *Prepared, i int, entry json.RawMessage) (*Request, error) {
	var fields map[string]json.RawMessage

	if err := Unmarshal(entry, &fields); err != nil {
		return nil, fmt.Errorf("%w (%w)", ErrDecoding, err)
	}

	req := &Request{}

	if method, ok := fields["method"]; ok && HintType(method) == TypeString {
		if err := Unmarshal(method, &req.Method); err != nil {
			return nil, fmt.Errorf("%w (%w)", ErrDecoding, err)
		}
	}

	if req.Method == "" {
		p.warn(i, ErrMethodNotString)
	}

	if params, ok := fields["params"]; ok {
		req.Params = NewParamsRaw(params)

		if hint := HintType(params); hint != TypeObject && hint != TypeArray {
			p.warn(i, ErrInvalidParameters)
		}
	}

	if id, ok := fields["id"]; ok {
		if err := req.ID.UnmarshalJSON(id); err != nil {
			p.warn(i, ErrIDNotScalar)
			req.ID = rawID(id)
		}
	} else {
		req.ID = c.nextID()
	}

	return req, nil
}

// finish reports warnings and applies reject mode.
func (c *Client) finish(p *Prepared) (*Prepared, error) {
	for _, w := range p.Warnings {
		c.Callbacks.runOnWarning(w)
	}

	if c.config.RejectWarnings {
		switch len(p.Warnings) {
		case 0:
		case 1:
			return nil, p.Warnings[0]
		default:
			return nil, &WarningsError{Warnings: p.Warnings}
		}
	}

	return p, nil
}

// Header returns the HTTP header values for a request body produced by [Client.Encode].
// X-Encoding is only set when an encoding is configured.
func (c *Client) Header() http.Header {
	h := make(http.Header, 4)

	h.Set("Content-Type", c.config.ContentType)
	h.Set("Cache-Control", c.config.Cache)
	h.Set("Pragma", c.config.Cache)

	if c.config.Encoding != "" {
		h.Set("X-Encoding", c.config.Encoding)
	}

	return h
}

// Encode writes the batch of p to w through the configured transfer encoding.
func (c *Client) Encode(w io.Writer, p *Prepared) error {
	if c.config.Debug {
		if payload, err := p.Payload(); err == nil {
			slog.Debug("JSON-RPC request", "encoding", c.config.Encoding, "body", string(payload))
		}
	}

	return NewEncoder(w, c.transfer).Encode(p.batch())
}

func (c *Client) readBody(r io.Reader) (string, error) {
	dec := NewDecoder(r, c.transfer)
	dec.SetLimit(c.config.ReadLimit)

	body, err := dec.ReadBody()
	if err != nil {
		return "", err
	}

	if c.config.Debug {
		slog.Debug("JSON-RPC response", "encoding", c.config.Encoding, "body", body)
	}

	return body, nil
}

// DecodeResponse reads a response body from r, reverses the transfer
// encoding and parses it like [ParseResponse].
//
// An error is returned only when the body cannot be read or its transfer
// encoding cannot be reversed.
func (c *Client) DecodeResponse(r io.Reader) (any, error) {
	body, err := c.readBody(r)
	if err != nil {
		return nil, err
	}

	return c.ParseResponse(body), nil
}

// DecodeResponseBatch is the typed form of [Client.DecodeResponse].
//
// A body that is not a valid response or batch of responses yields a batch
// holding the parse error response from [ParseErrorResponse]. An empty body
// yields an empty batch.
func (c *Client) DecodeResponseBatch(r io.Reader) (Batch[*Response], error) {
	body, err := c.readBody(r)
	if err != nil {
		return nil, err
	}

	if body == "" {
		return Batch[*Response]{}, nil
	}

	responses, _, err := DecodeResponses([]byte(body))
	if err != nil {
		c.Callbacks.runOnParseError(body, err)
		return Batch[*Response]{ParseErrorResponse(body)}, nil
	}

	return responses, nil
}

// ParseResponse is [ParseResponse] with [Callbacks.OnParseError] reporting.
func (c *Client) ParseResponse(text string) any {
	v, err := parseResponse(text)
	if err != nil {
		c.Callbacks.runOnParseError(trimBody(text), err)
	}

	return v
}
