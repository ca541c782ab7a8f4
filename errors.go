package codelib

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingSealer indicates a sealed field has no registered sealer.
	ErrMissingSealer = errors.New("missing sealer")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNotCloneable indicates a type seals through a pointer but does not implement Cloner.
	ErrNotCloneable = errors.New("type must implement Cloner")

	// ErrNilValue indicates a nil value was passed where one is required.
	ErrNilValue = errors.New("value cannot be nil")

	// ErrNilStream indicates a nil reader or writer was passed.
	ErrNilStream = errors.New("stream cannot be nil")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrSeal indicates sealing of a field failed.
	ErrSeal = errors.New("seal failed")

	// ErrOpen indicates opening of a sealed field failed.
	ErrOpen = errors.New("open failed")

	// ErrUnapprovedType indicates a type is not in the approved list.
	ErrUnapprovedType = errors.New("unapproved type")
)

// ConfigError represents a serializer configuration error.
// It wraps a sentinel error with additional context about the field and algorithm.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrMissingSealer, ErrInvalidTag, ...)
	Field     string // Field name that triggered the error
	Algorithm string // Algorithm that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q (field %s)", e.Err.Error(), e.Algorithm, e.Field)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SealError represents an error while sealing or opening a field.
type SealError struct {
	Err   error  // ErrSeal or ErrOpen
	Field string // Field name that failed
	Cause error  // Original error from the sealer
}

func (e *SealError) Error() string {
	op := "seal"
	if errors.Is(e.Err, ErrOpen) {
		op = "open"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", op, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", op, e.Field)
}

func (e *SealError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// TypeError reports a type rejected by ValidateType.
type TypeError struct {
	Type    string
	Message string
}

func (e *TypeError) Error() string {
	return e.Message
}

func (e *TypeError) Unwrap() error {
	return ErrUnapprovedType
}

func newConfigError(sentinel error, algorithm, field string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Field:     field,
	}
}

func newSealError(sentinel error, field string, cause error) error {
	return &SealError{
		Err:   sentinel,
		Field: field,
		Cause: cause,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
