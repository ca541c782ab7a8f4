// Package store persists keyed records.
//
// Badger keeps records in an embedded badger database. Values are encoded
// with a codelib.Serializer, so fields tagged `seal:"..."` are encrypted at
// rest.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/nrtyler/codelib"
)

// Errors returned by repositories.
var (
	ErrNotFound = errors.New("record not found")
	ErrExists   = errors.New("record already exists")
	ErrEmptyKey = errors.New("record key is empty")
)

// Keyed is implemented by records that know their storage key.
type Keyed interface {
	Key() string
}

// Repository is the create/retrieve/update/delete contract.
type Repository[T Keyed] interface {
	Create(ctx context.Context, record T) error
	Retrieve(ctx context.Context, key string) (T, error)
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, key string) error
}

// Options configures a Badger repository.
type Options struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string
	// InMemory keeps everything in memory.
	InMemory bool
	// Prefix namespaces keys so several repositories can share a database.
	// No prefix ever sees another prefix's records, even when one is a
	// prefix of the other.
	Prefix string
}

// Badger is a Repository backed by badger.
type Badger[T Keyed] struct {
	db         *badger.DB
	namespace  []byte
	serializer *codelib.Serializer[T]
}

var _ Repository[Keyed] = (*Badger[Keyed])(nil)

// Open opens or creates the database described by opts.
func Open[T Keyed](opts Options, serializer *codelib.Serializer[T]) (*Badger[T], error) {
	if serializer == nil {
		return nil, errors.New("store: serializer is required")
	}

	bopts := badger.DefaultOptions(opts.Path).WithLogger(nil)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	return newBadger(db, opts.Prefix, serializer), nil
}

// newBadger stores keys under "<len(prefix)>:<prefix>" so namespaces never
// overlap.
func newBadger[T Keyed](db *badger.DB, prefix string, serializer *codelib.Serializer[T]) *Badger[T] {
	namespace := strconv.Itoa(len(prefix)) + ":" + prefix
	return &Badger[T]{db: db, namespace: []byte(namespace), serializer: serializer}
}

// Close releases the database.
func (b *Badger[T]) Close() error {
	return b.db.Close()
}

// Create stores record. It fails with ErrExists if the key is taken.
func (b *Badger[T]) Create(ctx context.Context, record T) (err error) {
	key := record.Key()
	var size int
	defer func() { emitCreate(ctx, key, size, err) }()

	data, err := b.encode(ctx, record)
	if err != nil {
		return err
	}
	size = len(data)

	return b.db.Update(func(txn *badger.Txn) error {
		dbKey := b.dbKey(key)
		_, err := txn.Get(dbKey)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", ErrExists, key)
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(dbKey, data)
	})
}

// Retrieve loads the record stored under key.
func (b *Badger[T]) Retrieve(ctx context.Context, key string) (record T, err error) {
	var data []byte
	defer func() { emitRetrieve(ctx, key, len(data), err) }()

	if key == "" {
		return record, ErrEmptyKey
	}

	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.dbKey(key))
		if err != nil {
			return b.notFound(key, err)
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return record, err
	}

	out, err := b.serializer.Unmarshal(ctx, data)
	if err != nil {
		return record, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return *out, nil
}

// Update replaces an existing record. It fails with ErrNotFound if there is
// nothing to replace.
func (b *Badger[T]) Update(ctx context.Context, record T) (err error) {
	key := record.Key()
	var size int
	defer func() { emitUpdate(ctx, key, size, err) }()

	data, err := b.encode(ctx, record)
	if err != nil {
		return err
	}
	size = len(data)

	return b.db.Update(func(txn *badger.Txn) error {
		dbKey := b.dbKey(key)
		if _, err := txn.Get(dbKey); err != nil {
			return b.notFound(key, err)
		}
		return txn.Set(dbKey, data)
	})
}

// Delete removes the record stored under key.
func (b *Badger[T]) Delete(ctx context.Context, key string) (err error) {
	defer func() { emitDelete(ctx, key, err) }()

	if key == "" {
		return ErrEmptyKey
	}

	return b.db.Update(func(txn *badger.Txn) error {
		dbKey := b.dbKey(key)
		if _, err := txn.Get(dbKey); err != nil {
			return b.notFound(key, err)
		}
		return txn.Delete(dbKey)
	})
}

// Keys lists every stored key in ascending order.
func (b *Badger[T]) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(b.namespace); it.ValidForPrefix(b.namespace); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			keys = append(keys, string(it.Item().Key()[len(b.namespace):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (b *Badger[T]) encode(ctx context.Context, record T) ([]byte, error) {
	if record.Key() == "" {
		return nil, ErrEmptyKey
	}
	data, err := b.serializer.Marshal(ctx, &record)
	if err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", record.Key(), err)
	}
	return data, nil
}

func (b *Badger[T]) dbKey(key string) []byte {
	k := make([]byte, 0, len(b.namespace)+len(key))
	k = append(k, b.namespace...)
	return append(k, key...)
}

func (b *Badger[T]) notFound(key string, err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return err
}
