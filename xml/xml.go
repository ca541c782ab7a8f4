// Package xml provides an XML codec implementation.
//
// XML cannot encode maps, so values are limited to structs, slices and scalars.
package xml

import (
	"encoding/xml"

	"github.com/nrtyler/codelib"
)

// Option configures the XML codec.
type Option func(*xmlCodec)

// WithIndent pretty-prints output using indent for each nesting level.
func WithIndent(indent string) Option {
	return func(c *xmlCodec) {
		c.indent = indent
	}
}

// WithHeader prefixes output with the standard XML declaration.
func WithHeader() Option {
	return func(c *xmlCodec) {
		c.header = true
	}
}

type xmlCodec struct {
	indent string
	header bool
}

// New returns an XML codec.
func New(opts ...Option) codelib.Codec {
	c := &xmlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.indent != "" {
		data, err = xml.MarshalIndent(v, "", c.indent)
	} else {
		data, err = xml.Marshal(v)
	}
	if err != nil || !c.header {
		return data, err
	}
	return append([]byte(xml.Header), data...), nil
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
