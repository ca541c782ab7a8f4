package codelib

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Hasher produces a deterministic digest for fingerprinting.
// Not for passwords.
type Hasher interface {
	// Hash returns the hex-encoded digest of data.
	Hash(data []byte) string
}

type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA256Hasher() Hasher {
	return sha256Hasher{}
}

func (sha256Hasher) Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

type blake2bHasher struct{}

// Blake2bHasher returns a BLAKE2b-256 hasher.
// The result is a hex-encoded 64-character string.
func Blake2bHasher() Hasher {
	return blake2bHasher{}
}

func (blake2bHasher) Hash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Fingerprint encodes v with codec and hashes the result.
// A nil hasher defaults to BLAKE2b.
func Fingerprint(codec Codec, v any, hasher Hasher) (string, error) {
	if hasher == nil {
		hasher = Blake2bHasher()
	}
	data, err := codec.Marshal(v)
	if err != nil {
		return "", newCodecError(ErrMarshal, err)
	}
	return hasher.Hash(data), nil
}
