// Package collections provides an observable list and small slice and map
// helpers.
package collections

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/nrtyler/codelib/label"
)

// ErrOutOfRange is returned for indexes outside the list.
var ErrOutOfRange = errors.New("index out of range")

// Op identifies the kind of change made to an AlertList.
type Op int

const (
	OpAdded Op = iota
	OpRemoved
	OpCleared
)

func init() {
	label.Register(map[Op]string{
		OpAdded:   "added",
		OpRemoved: "removed",
		OpCleared: "cleared",
	})
}

func (o Op) String() string {
	if text, ok := label.Get(o); ok {
		return text
	}
	return "unknown"
}

// Change describes one mutation. Items holds the elements added or removed.
type Change[T any] struct {
	Op    Op
	Items []T
}

// AlertList is a list that notifies subscribers whenever its contents change.
// The zero value is an empty list ready to use.
type AlertList[T comparable] struct {
	mu     sync.Mutex
	items  []T
	subs   map[uint64]func(Change[T])
	nextID uint64
}

// NewAlertList returns a list holding items.
func NewAlertList[T comparable](items ...T) *AlertList[T] {
	return &AlertList[T]{items: slices.Clone(items)}
}

// Subscribe registers fn for every change. Handlers run after the list's
// lock is released, in no particular order. Call cancel to unsubscribe.
func (l *AlertList[T]) Subscribe(fn func(Change[T])) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subs == nil {
		l.subs = make(map[uint64]func(Change[T]))
	}
	id := l.nextID
	l.nextID++
	l.subs[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

// Len returns the number of items.
func (l *AlertList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Items returns a copy of the list contents.
func (l *AlertList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// Add appends item.
func (l *AlertList[T]) Add(item T) {
	l.AddRange(item)
}

// AddRange appends items in order.
func (l *AlertList[T]) AddRange(items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	l.items = append(l.items, items...)
	l.unlockAndNotify(OpAdded, slices.Clone(items))
}

// Clear removes every item.
func (l *AlertList[T]) Clear() {
	l.mu.Lock()
	if len(l.items) == 0 {
		l.mu.Unlock()
		return
	}
	removed := l.items
	l.items = nil
	l.unlockAndNotify(OpCleared, removed)
}

// Remove deletes the first occurrence of item and reports whether it was found.
func (l *AlertList[T]) Remove(item T) bool {
	l.mu.Lock()
	i := slices.Index(l.items, item)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.unlockAndNotify(OpRemoved, []T{item})
	return true
}

// RemoveAll deletes every item matching pred and returns how many went.
func (l *AlertList[T]) RemoveAll(pred func(T) bool) int {
	l.mu.Lock()
	var removed []T
	kept := l.items[:0]
	for _, item := range l.items {
		if pred(item) {
			removed = append(removed, item)
		} else {
			kept = append(kept, item)
		}
	}
	if len(removed) == 0 {
		l.mu.Unlock()
		return 0
	}
	clear(l.items[len(kept):])
	l.items = kept
	l.unlockAndNotify(OpRemoved, removed)
	return len(removed)
}

// RemoveAt deletes the item at index i.
func (l *AlertList[T]) RemoveAt(i int) error {
	return l.RemoveRange(i, 1)
}

// RemoveRange deletes n items starting at index i. Removing zero items
// at a valid index is a no-op.
func (l *AlertList[T]) RemoveRange(i, n int) error {
	l.mu.Lock()
	if i < 0 || n < 0 || i > len(l.items) || n > len(l.items)-i {
		l.mu.Unlock()
		return ErrOutOfRange
	}
	if n == 0 {
		l.mu.Unlock()
		return nil
	}
	removed := slices.Clone(l.items[i : i+n])
	l.items = slices.Delete(l.items, i, i+n)
	l.unlockAndNotify(OpRemoved, removed)
	return nil
}

// unlockAndNotify must be called with l.mu held.
func (l *AlertList[T]) unlockAndNotify(op Op, items []T) {
	handlers := make([]func(Change[T]), 0, len(l.subs))
	for _, fn := range l.subs {
		handlers = append(handlers, fn)
	}
	length := len(l.items)
	l.mu.Unlock()

	emitListChanged(context.Background(), op, len(items), length)

	change := Change[T]{Op: op, Items: items}
	for _, fn := range handlers {
		fn(change)
	}
}
