package generate

import (
	"errors"
	"fmt"
)

// Sentinel errors for generator parameters.
var (
	ErrMinAboveMax     = errors.New("min is greater than max")
	ErrNegativeSize    = errors.New("size must not be negative")
	ErrNegativeMax     = errors.New("max must not be negative")
	ErrNotFinite       = errors.New("value must be finite")
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrTooFewChoices   = errors.New("dice needs at least two sides")
	ErrNoNames         = errors.New("name list is empty")
	ErrMalformedNames  = errors.New("malformed name list")
)

// ParamError reports which parameter failed validation.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func paramErr(param string, err error) error {
	return &ParamError{Param: param, Err: err}
}
