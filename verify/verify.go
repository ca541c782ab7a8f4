// Package verify checks values against inclusive bounds and remembers the
// outcome of the last run.
package verify

import (
	"cmp"
	"strconv"
	"sync"

	"github.com/nrtyler/codelib/generate"
	"github.com/nrtyler/codelib/label"
)

// Result is the outcome of a verification run.
type Result int

const (
	Failed Result = iota
	Passed
	YetToRun
)

func init() {
	label.Register(map[Result]string{
		Failed:   "Failed",
		Passed:   "Passed",
		YetToRun: "Yet To Run",
	})
}

func (r Result) String() string {
	if text, ok := label.Get(r); ok {
		return text
	}
	return "Result(" + strconv.Itoa(int(r)) + ")"
}

// Verifier checks values against [Min, Max].
type Verifier[T cmp.Ordered] struct {
	Min T
	Max T

	mu     sync.Mutex
	result Result
}

// New returns a verifier over [min, max].
func New[T cmp.Ordered](min, max T) *Verifier[T] {
	return &Verifier[T]{Min: min, Max: max, result: YetToRun}
}

// FromBundle returns a verifier over the bundle's bounds, both inclusive.
func FromBundle[T generate.Number](b generate.Bundle[T]) *Verifier[T] {
	return New(b.Min, b.Max)
}

// Result returns the outcome of the last run.
func (v *Verifier[T]) Result() Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// Value checks a single value.
func (v *Verifier[T]) Value(x T) Result {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.result = v.check(x)
	return v.result
}

// Array checks every value. An empty slice passes.
func (v *Verifier[T]) Array(xs []T) Result {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, x := range xs {
		if v.check(x) == Failed {
			v.result = Failed
			return v.result
		}
	}
	v.result = Passed
	return v.result
}

func (v *Verifier[T]) check(x T) Result {
	// NaN compares false both ways and fails.
	if x >= v.Min && x <= v.Max {
		return Passed
	}
	return Failed
}

// Check verifies x against [min, max] in one call.
func Check[T cmp.Ordered](min, max, x T) Result {
	return New(min, max).Value(x)
}

// CheckArray verifies xs against [min, max] in one call.
func CheckArray[T cmp.Ordered](min, max T, xs []T) Result {
	return New(min, max).Array(xs)
}
