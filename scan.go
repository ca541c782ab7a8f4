package codelib

import (
	"fmt"
	"go/token"
	"reflect"
	"slices"

	"github.com/zoobzio/sentinel"
)

// HasFieldOfType reports whether v's struct type declares a field, exported
// or not, of exactly type t. Pointers are dereferenced; non-struct values
// report false.
func HasFieldOfType(v any, t reflect.Type) bool {
	rt := structType(reflect.TypeOf(v))
	if rt == nil {
		return false
	}
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).Type == t {
			return true
		}
	}
	return false
}

// HasExportedFieldOfType reports whether T's exported surface includes a
// field of exactly type t.
func HasExportedFieldOfType[T any](t reflect.Type) bool {
	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Struct {
		for _, field := range sentinel.Scan[T]().Fields {
			if token.IsExported(field.Name) && field.ReflectType == t {
				return true
			}
		}
		return false
	}

	rt = structType(rt)
	if rt == nil {
		return false
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.IsExported() && sf.Type == t {
			return true
		}
	}
	return false
}

// HasFieldOrExportedOfType combines HasFieldOfType and HasExportedFieldOfType.
func HasFieldOrExportedOfType[T any](v T, t reflect.Type) bool {
	return HasFieldOfType(v, t) || HasExportedFieldOfType[T](t)
}

// Implements reports whether v's dynamic type implements interface I.
func Implements[I any](v any) bool {
	return ImplementsType(v, reflect.TypeFor[I]())
}

// ImplementsType reports whether v's dynamic type implements iface.
// It reports false when iface is not an interface type or v is nil.
func ImplementsType(v any, iface reflect.Type) bool {
	if v == nil || iface == nil || iface.Kind() != reflect.Interface {
		return false
	}
	return reflect.TypeOf(v).Implements(iface)
}

// ValidateType returns a *TypeError unless t is one of approved.
// An optional message replaces the default one.
func ValidateType(approved []reflect.Type, t reflect.Type, msg ...string) error {
	if slices.Contains(approved, t) {
		return nil
	}

	message := fmt.Sprintf("the type, '%v', is not valid for this operation. Try a different type.", t)
	if len(msg) > 0 && msg[0] != "" {
		message = msg[0]
	}
	return &TypeError{Type: fmt.Sprint(t), Message: message}
}

func structType(rt reflect.Type) reflect.Type {
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}
	return rt
}
