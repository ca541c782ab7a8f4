package generate

import "reflect"

// Value returns a single random T within b's bounds, dispatching on T's
// underlying kind.
func Value[T Number](g *Generator, b Bundle[T]) (T, error) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		v, err := g.IntBundle(Bundle[int]{Min: int(b.Min), Max: int(b.Max), Size: b.Size})
		return T(v), err
	case reflect.Float64:
		v, err := g.Float64Bundle(Bundle[float64]{Min: float64(b.Min), Max: float64(b.Max), Size: b.Size})
		return T(v), err
	case reflect.Uint8:
		v, err := g.ByteBundle(Bundle[byte]{Min: byte(b.Min), Max: byte(b.Max), Size: b.Size})
		return T(v), err
	default:
		// Unreachable while Number only admits the kinds above.
		var zero T
		return zero, paramErr("type", ErrUnsupportedType)
	}
}

// Array returns b.Size random Ts within b's bounds.
func Array[T Number](g *Generator, b Bundle[T]) ([]T, error) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		vs, err := g.IntsBundle(Bundle[int]{Min: int(b.Min), Max: int(b.Max), Size: b.Size})
		return convert[int, T](vs), err
	case reflect.Float64:
		vs, err := g.Floats64Bundle(Bundle[float64]{Min: float64(b.Min), Max: float64(b.Max), Size: b.Size})
		return convert[float64, T](vs), err
	case reflect.Uint8:
		vs, err := g.BytesBundle(Bundle[byte]{Min: byte(b.Min), Max: byte(b.Max), Size: b.Size})
		return convert[byte, T](vs), err
	default:
		// Unreachable while Number only admits the kinds above.
		return nil, paramErr("type", ErrUnsupportedType)
	}
}

func convert[From, To Number](in []From) []To {
	if in == nil {
		return nil
	}
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = To(v)
	}
	return out
}
