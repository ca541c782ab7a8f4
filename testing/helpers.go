// Package testing provides test utilities for codelib.
package testing

import (
	"testing"

	"github.com/nrtyler/codelib"
)

// TestKey returns a valid 32-byte key usable by every sealer.
func TestKey(tb testing.TB) []byte {
	tb.Helper()
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestSealer returns a sealer for algo keyed with TestKey.
func TestSealer(tb testing.TB, algo codelib.SealAlgo) codelib.Sealer {
	tb.Helper()

	var (
		sealer codelib.Sealer
		err    error
	)
	switch algo {
	case codelib.SealAES:
		sealer, err = codelib.AES(TestKey(tb))
	case codelib.SealXChaCha:
		sealer, err = codelib.XChaCha(TestKey(tb))
	default:
		tb.Fatalf("no test sealer for algorithm %q", algo)
	}
	if err != nil {
		tb.Fatalf("creating %s sealer: %v", algo, err)
	}
	return sealer
}

// SealerOptions returns serializer options registering every test sealer.
func SealerOptions(tb testing.TB) []codelib.Option {
	tb.Helper()
	return []codelib.Option{
		codelib.WithSealer(codelib.SealAES, TestSealer(tb, codelib.SealAES)),
		codelib.WithSealer(codelib.SealXChaCha, TestSealer(tb, codelib.SealXChaCha)),
	}
}

// SimpleUser is a test type with no seal tags.
type SimpleUser struct {
	ID   string `json:"id" xml:"id" yaml:"id" bson:"id" msgpack:"id"`
	Name string `json:"name" xml:"name" yaml:"name" bson:"name" msgpack:"name"`
}

// Clone implements Cloner[SimpleUser].
func (u SimpleUser) Clone() SimpleUser { return u }

// Profile is a test type with sealed string fields. It encodes under every
// codec in this module.
type Profile struct {
	ID    string `json:"id" xml:"id" yaml:"id" bson:"id" msgpack:"id"`
	Email string `json:"email" xml:"email" yaml:"email" bson:"email" msgpack:"email" seal:"aes"`
	Note  string `json:"note" xml:"note" yaml:"note" bson:"note" msgpack:"note" seal:"xchacha"`
}

// Clone implements Cloner[Profile].
func (p Profile) Clone() Profile { return p }
