package codelib

import "reflect"

// Copy returns a deep copy of src made by encoding it with codec and
// decoding the bytes into a fresh value.
//
// Only state the codec can represent survives the trip; unexported fields
// are dropped by every codec in this module. A nil pointer, slice, map or
// interface source returns the zero value.
func Copy[T any](codec Codec, src T) (T, error) {
	var dst T
	if isNil(src) {
		return dst, nil
	}

	data, err := codec.Marshal(src)
	if err != nil {
		return dst, newCodecError(ErrMarshal, err)
	}

	// Pointer types decode into a freshly allocated target.
	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Pointer {
		target := reflect.New(rt.Elem())
		if err := codec.Unmarshal(data, target.Interface()); err != nil {
			return dst, newCodecError(ErrUnmarshal, err)
		}
		return target.Interface().(T), nil
	}

	if err := codec.Unmarshal(data, &dst); err != nil {
		return dst, newCodecError(ErrUnmarshal, err)
	}
	return dst, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
