package codelib

import (
	"bytes"

	"github.com/google/go-cmp/cmp"
)

// Equal reports whether a and b are structurally equal.
// Options are passed through to go-cmp, e.g. cmpopts.IgnoreUnexported.
func Equal(a, b any, opts ...cmp.Option) bool {
	return cmp.Equal(a, b, opts...)
}

// Diff returns a human-readable report of the differences between a and b,
// or "" when they are equal.
func Diff(a, b any, opts ...cmp.Option) string {
	return cmp.Diff(a, b, opts...)
}

// SameEncoding encodes a and b with codec and compares the bytes.
// A nil operand never matches.
//
// The result depends on the codec being deterministic: JSON sorts map keys,
// MessagePack and BSON do not.
func SameEncoding(codec Codec, a, b any) (bool, error) {
	if isNil(a) || isNil(b) {
		return false, nil
	}

	left, err := codec.Marshal(a)
	if err != nil {
		return false, newCodecError(ErrMarshal, err)
	}
	right, err := codec.Marshal(b)
	if err != nil {
		return false, newCodecError(ErrMarshal, err)
	}

	return bytes.Equal(left, right), nil
}
