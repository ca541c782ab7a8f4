// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"

	"github.com/nrtyler/codelib"
	"gopkg.in/yaml.v3"
)

// Option configures the YAML codec.
type Option func(*yamlCodec)

// WithIndent sets the number of spaces per nesting level. The default is 4.
func WithIndent(spaces int) Option {
	return func(c *yamlCodec) {
		c.indent = spaces
	}
}

// WithStrictFields rejects input containing fields the target does not declare.
func WithStrictFields() Option {
	return func(c *yamlCodec) {
		c.strict = true
	}
}

type yamlCodec struct {
	indent int
	strict bool
}

// New returns a YAML codec.
func New(opts ...Option) codelib.Codec {
	c := &yamlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	if c.indent <= 0 {
		return yaml.Marshal(v)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return yaml.Unmarshal(data, v)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
