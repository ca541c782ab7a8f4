package generate

import "math"

// Int returns a value in [0, MaxInt32).
func (g *Generator) Int() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return int(g.r.Int32N(math.MaxInt32))
}

// IntN returns a value in [0, max), or 0 when max is 0.
func (g *Generator) IntN(max int) (int, error) {
	if max < 0 {
		return 0, paramErr("max", ErrNegativeMax)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.intRange(0, max), nil
}

// IntRange returns a value in [min, max), or min when the bounds are equal.
func (g *Generator) IntRange(min, max int) (int, error) {
	if min > max {
		return 0, paramErr("min", ErrMinAboveMax)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.intRange(min, max), nil
}

// Ints returns size values in [0, MaxInt32).
func (g *Generator) Ints(size int) ([]int, error) {
	return g.IntsRange(0, math.MaxInt32, size)
}

// IntsN returns size values in [0, max).
func (g *Generator) IntsN(max, size int) ([]int, error) {
	if max < 0 {
		return nil, paramErr("max", ErrNegativeMax)
	}
	return g.IntsRange(0, max, size)
}

// IntsRange returns size values in [min, max).
func (g *Generator) IntsRange(min, max, size int) ([]int, error) {
	if err := BetweenN(min, max, size).Validate(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]int, size)
	for i := range out {
		out[i] = g.intRange(min, max)
	}
	return out, nil
}

// IntBundle returns a single value within b's bounds.
func (g *Generator) IntBundle(b Bundle[int]) (int, error) {
	if err := b.validateBounds(); err != nil {
		return 0, err
	}
	return g.IntRange(b.Min, b.Max)
}

// IntsBundle returns b.Size values within b's bounds.
func (g *Generator) IntsBundle(b Bundle[int]) ([]int, error) {
	return g.IntsRange(b.Min, b.Max, b.Size)
}

// intRange spans the full int range by working in uint64.
func (g *Generator) intRange(min, max int) int {
	if min == max {
		return min
	}
	span := uint64(max) - uint64(min)
	return min + int(g.r.Uint64N(span))
}

// Float64 returns a value in [0, 1).
func (g *Generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.Float64()
}

// Float64N returns a value in [0, max).
func (g *Generator) Float64N(max float64) (float64, error) {
	if !finite(max) {
		return 0, paramErr("max", ErrNotFinite)
	}
	if max < 0 {
		return 0, paramErr("max", ErrNegativeMax)
	}
	return g.Float64Range(0, max)
}

// Float64Range returns a value in [min, max), or min when the bounds are equal.
func (g *Generator) Float64Range(min, max float64) (float64, error) {
	if err := Between(min, max).Validate(); err != nil {
		return 0, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.floatRange(min, max), nil
}

// Floats64 returns size values in [0, 1).
func (g *Generator) Floats64(size int) ([]float64, error) {
	return g.Floats64Range(0, 1, size)
}

// Floats64Range returns size values in [min, max).
func (g *Generator) Floats64Range(min, max float64, size int) ([]float64, error) {
	if err := BetweenN(min, max, size).Validate(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]float64, size)
	for i := range out {
		out[i] = g.floatRange(min, max)
	}
	return out, nil
}

// Float64Bundle returns a single value within b's bounds.
func (g *Generator) Float64Bundle(b Bundle[float64]) (float64, error) {
	if err := b.validateBounds(); err != nil {
		return 0, err
	}
	return g.Float64Range(b.Min, b.Max)
}

// Floats64Bundle returns b.Size values within b's bounds.
func (g *Generator) Floats64Bundle(b Bundle[float64]) ([]float64, error) {
	return g.Floats64Range(b.Min, b.Max, b.Size)
}

// floatRange interpolates instead of computing max-min, which overflows
// for spans wider than MaxFloat64.
func (g *Generator) floatRange(min, max float64) float64 {
	if min == max {
		return min
	}
	r := g.r.Float64()
	v := min*(1-r) + max*r
	if v >= max {
		return math.Nextafter(max, min)
	}
	if v < min {
		return min
	}
	return v
}

// Byte returns a value covering the full 0..255 range.
func (g *Generator) Byte() byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return byte(g.r.UintN(256))
}

// ByteN returns a value in [0, max), or 0 when max is 0.
func (g *Generator) ByteN(max byte) byte {
	v, _ := g.ByteRange(0, max)
	return v
}

// ByteRange returns a value in [min, max), or min when the bounds are equal.
func (g *Generator) ByteRange(min, max byte) (byte, error) {
	if min > max {
		return 0, paramErr("min", ErrMinAboveMax)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return byte(g.intRange(int(min), int(max))), nil
}

// Bytes returns size values covering the full 0..255 range.
func (g *Generator) Bytes(size int) ([]byte, error) {
	if size < 0 {
		return nil, paramErr("size", ErrNegativeSize)
	}
	out := make([]byte, size)
	_, _ = g.Read(out)
	return out, nil
}

// BytesRange returns size values in [min, max).
func (g *Generator) BytesRange(min, max byte, size int) ([]byte, error) {
	if err := BetweenN(min, max, size).Validate(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]byte, size)
	for i := range out {
		out[i] = byte(g.intRange(int(min), int(max)))
	}
	return out, nil
}

// ByteBundle returns a single value within b's bounds.
func (g *Generator) ByteBundle(b Bundle[byte]) (byte, error) {
	if err := b.validateBounds(); err != nil {
		return 0, err
	}
	return g.ByteRange(b.Min, b.Max)
}

// BytesBundle returns b.Size values within b's bounds.
func (g *Generator) BytesBundle(b Bundle[byte]) ([]byte, error) {
	return g.BytesRange(b.Min, b.Max, b.Size)
}
