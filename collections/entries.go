package collections

import (
	"cmp"
	"encoding/xml"
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateKey is returned when entries repeat a key.
var ErrDuplicateKey = errors.New("duplicate key")

// Entry is one key/value pair of a map in a form every codec can encode.
type Entry[K comparable, V any] struct {
	Key   K `json:"key" xml:"key" yaml:"key" bson:"key" msgpack:"key"`
	Value V `json:"value" xml:"value" yaml:"value" bson:"value" msgpack:"value"`
}

// Entries wraps a slice of entries as a single XML document.
type Entries[K comparable, V any] struct {
	XMLName xml.Name      `json:"-" xml:"entries" yaml:"-" bson:"-" msgpack:"-"`
	Items   []Entry[K, V] `json:"entries" xml:"entry" yaml:"entries" bson:"entries" msgpack:"entries"`
}

// ToEntries flattens m. Order is unspecified.
func ToEntries[K comparable, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// SortedEntries flattens m in ascending key order.
func SortedEntries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	out := ToEntries(m)
	slices.SortFunc(out, func(a, b Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// FromEntries rebuilds a map from entries.
func FromEntries[K comparable, V any](entries []Entry[K, V]) (map[K]V, error) {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		if _, ok := m[e.Key]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, e.Key)
		}
		m[e.Key] = e.Value
	}
	return m, nil
}
