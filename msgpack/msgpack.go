// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"

	"github.com/nrtyler/codelib"
	"github.com/vmihailenco/msgpack/v5"
)

// Option configures the MessagePack codec.
type Option func(*msgpackCodec)

// WithJSONTags reads field names from `json` struct tags when no `msgpack`
// tag is present, so one set of tags serves both formats.
func WithJSONTags() Option {
	return func(c *msgpackCodec) {
		c.jsonTags = true
	}
}

// WithCompactInts encodes integers in the smallest representation that fits.
func WithCompactInts() Option {
	return func(c *msgpackCodec) {
		c.compactInts = true
	}
}

type msgpackCodec struct {
	jsonTags    bool
	compactInts bool
}

// New returns a MessagePack codec.
func New(opts ...Option) codelib.Codec {
	c := &msgpackCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	if !c.jsonTags && !c.compactInts {
		return msgpack.Marshal(v)
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if c.jsonTags {
		enc.SetCustomStructTag("json")
	}
	enc.UseCompactInts(c.compactInts)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	if !c.jsonTags {
		return msgpack.Unmarshal(data, v)
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
