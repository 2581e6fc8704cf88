package rpcconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by [NewClient] to empty [ClientConfig] fields.
const (
	DefaultContentType = "application/json-rpc; charset=UTF-8"
	DefaultCache       = "no-store"
)

var ErrInvalidConfig = errors.New("rpcconv: invalid client configuration")

// ClientConfig configures a [Client]. The zero value is usable.
//
// In YAML:
//
//	encoding: base64-utf8
//	content_type: application/json-rpc; charset=UTF-8
//	cache: no-store
//	reject_warnings: true
//	obfuscate_key: 170
//	read_limit: 1048576
//	debug: false
type ClientConfig struct {
	// Encoding is the transfer encoding name sent as X-Encoding, see [ParseTransfer].
	// Empty sends bodies as plain JSON.
	Encoding string `yaml:"encoding"`

	// ContentType defaults to [DefaultContentType].
	ContentType string `yaml:"content_type"`

	// Cache is sent as Cache-Control and Pragma. Defaults to [DefaultCache].
	Cache string `yaml:"cache"`

	// RejectWarnings makes any request warning fatal for the whole batch.
	RejectWarnings bool `yaml:"reject_warnings"`

	// ObfuscateKey is the XOR key of the obfuscate encoding. Zero selects 0xAA.
	ObfuscateKey byte `yaml:"obfuscate_key"`

	// ReadLimit caps the size of a response body in bytes. Zero means no limit.
	ReadLimit int64 `yaml:"read_limit"`

	// Debug logs request and response bodies with [slog.Debug].
	Debug bool `yaml:"debug"`
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.ContentType == "" {
		c.ContentType = DefaultContentType
	}

	if c.Cache == "" {
		c.Cache = DefaultCache
	}

	return c
}

// ParseClientConfig decodes a YAML document into a [ClientConfig].
// Unknown keys are rejected. An empty document yields the zero config.
func ParseClientConfig(data []byte) (ClientConfig, error) {
	var cfg ClientConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ClientConfig{}, fmt.Errorf("%w (%w)", ErrInvalidConfig, err)
	}

	if _, err := ParseTransfer(cfg.Encoding); err != nil {
		return ClientConfig{}, fmt.Errorf("%w (%w)", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LoadClientConfig reads a YAML file. See [ParseClientConfig].
func LoadClientConfig(path string) (ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClientConfig{}, err
	}

	return ParseClientConfig(data)
}
