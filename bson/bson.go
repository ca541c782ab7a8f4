// Package bson provides a BSON codec implementation.
//
// BSON documents must be structs or maps at the top level.
package bson

import (
	"github.com/nrtyler/codelib"
	"go.mongodb.org/mongo-driver/bson"
)

type bsonCodec struct{}

// New returns a BSON codec.
func New() codelib.Codec {
	return &bsonCodec{}
}

func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
