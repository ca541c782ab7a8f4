package codelib

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// SealAlgo names a sealing algorithm.
// Use these constants in struct tags: `seal:"aes"`
type SealAlgo string

const (
	// SealAES uses AES-GCM.
	SealAES SealAlgo = "aes"

	// SealXChaCha uses XChaCha20-Poly1305.
	SealXChaCha SealAlgo = "xchacha"
)

var validSealAlgos = map[SealAlgo]bool{
	SealAES:     true,
	SealXChaCha: true,
}

// IsValidSealAlgo returns true if the algorithm is a known sealing algorithm.
func IsValidSealAlgo(algo SealAlgo) bool {
	return validSealAlgos[algo]
}

// Sealing errors.
var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrCiphertextShort  = errors.New("ciphertext too short")
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Sealer encrypts and authenticates field values.
type Sealer interface {
	// Seal encrypts plaintext and returns nonce-prefixed ciphertext.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal.
	Open(ciphertext []byte) ([]byte, error)
}

// aeadSealer seals with any AEAD, prefixing a random nonce.
type aeadSealer struct {
	aead cipher.AEAD
}

// AES returns an AES-GCM sealer.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func AES(key []byte) (Sealer, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &aeadSealer{aead: gcm}, nil
}

// XChaCha returns an XChaCha20-Poly1305 sealer. Key must be 32 bytes.
func XChaCha(key []byte) (Sealer, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	return &aeadSealer{aead: aead}, nil
}

func (s *aeadSealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *aeadSealer) Open(ciphertext []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrCiphertextShort
	}

	nonce, body := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
