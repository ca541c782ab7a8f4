package generate

import "math"

// Number is the set of element types the generators produce.
type Number interface {
	~int | ~float64 | ~uint8
}

// Bundle groups the bounds and array size passed to a generator.
// Min is inclusive, Max exclusive.
type Bundle[T Number] struct {
	Min  T
	Max  T
	Size int
}

// Upto returns a bundle over [0, max).
func Upto[T Number](max T) Bundle[T] {
	return Bundle[T]{Max: max}
}

// Between returns a bundle over [min, max).
func Between[T Number](min, max T) Bundle[T] {
	return Bundle[T]{Min: min, Max: max}
}

// BetweenN returns a bundle over [min, max) for arrays of size elements.
func BetweenN[T Number](min, max T, size int) Bundle[T] {
	return Bundle[T]{Min: min, Max: max, Size: size}
}

// Validate reports the first invalid parameter as a *ParamError.
func (b Bundle[T]) Validate() error {
	if !finite(float64(b.Min)) {
		return paramErr("min", ErrNotFinite)
	}
	if !finite(float64(b.Max)) {
		return paramErr("max", ErrNotFinite)
	}
	if b.Min > b.Max {
		return paramErr("min", ErrMinAboveMax)
	}
	if b.Size < 0 {
		return paramErr("size", ErrNegativeSize)
	}
	return nil
}

// validateBounds checks Min and Max only, for single-value generators.
func (b Bundle[T]) validateBounds() error {
	b.Size = 0
	return b.Validate()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
