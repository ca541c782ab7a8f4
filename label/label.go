// Package label attaches human-readable text to values.
//
// Labels are registered per comparable value, typically enum constants:
//
//	label.Register(map[Status]string{
//		StatusActive:   "Active",
//		StatusInactive: "On Hold",
//	})
//
//	label.Text(StatusInactive) // "On Hold"
//
// Struct fields carry labels in a `label:"..."` tag, read with Field.
package label

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

const tagName = "label"

func init() {
	sentinel.Tag(tagName)
}

// Labeler is implemented by values that know their own label.
// It takes precedence over registered labels.
type Labeler interface {
	Label() string
}

// registry maps values, keyed with their dynamic type, to labels.
var registry sync.Map

// Register adds labels for the given values, replacing existing ones.
func Register[T comparable](labels map[T]string) {
	for v, text := range labels {
		registry.Store(v, text)
	}
}

// Get returns the label for v, if any.
func Get(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if l, ok := v.(Labeler); ok && !isNilPointer(v) {
		return l.Label(), true
	}
	if !reflect.TypeOf(v).Comparable() {
		return "", false
	}
	text, ok := registry.Load(v)
	if !ok {
		return "", false
	}
	return text.(string), true
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Text returns the label for v, falling back to its default formatting.
func Text(v any) string {
	if text, ok := Get(v); ok {
		return text
	}
	return fmt.Sprint(v)
}

// Has reports whether v has a label.
func Has(v any) bool {
	_, ok := Get(v)
	return ok
}

// Field returns the `label` tag of T's field called name.
func Field[T any](name string) (string, bool) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return "", false
	}

	for _, field := range sentinel.Scan[T]().Fields {
		if field.Name != name {
			continue
		}
		if text, ok := field.Tags[tagName]; ok {
			return text, true
		}
		return rt.FieldByIndex(field.Index).Tag.Lookup(tagName)
	}
	return "", false
}
