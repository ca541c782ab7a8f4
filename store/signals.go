package store

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for repository operations.
var (
	SignalCreate   = capitan.NewSignal("store.create", "Record created")
	SignalRetrieve = capitan.NewSignal("store.retrieve", "Record retrieved")
	SignalUpdate   = capitan.NewSignal("store.update", "Record updated")
	SignalDelete   = capitan.NewSignal("store.delete", "Record deleted")
)

// Keys for typed event data.
var (
	KeyKey   = capitan.NewStringKey("key")
	KeySize  = capitan.NewIntKey("size")
	KeyError = capitan.NewErrorKey("error")
)

func emitCreate(ctx context.Context, key string, size int, err error) {
	if err != nil {
		capitan.Error(ctx, SignalCreate, fields(key, size, err)...)
		return
	}
	capitan.Emit(ctx, SignalCreate, fields(key, size, err)...)
}

func emitRetrieve(ctx context.Context, key string, size int, err error) {
	if err != nil {
		capitan.Error(ctx, SignalRetrieve, fields(key, size, err)...)
		return
	}
	capitan.Emit(ctx, SignalRetrieve, fields(key, size, err)...)
}

func emitUpdate(ctx context.Context, key string, size int, err error) {
	if err != nil {
		capitan.Error(ctx, SignalUpdate, fields(key, size, err)...)
		return
	}
	capitan.Emit(ctx, SignalUpdate, fields(key, size, err)...)
}

func emitDelete(ctx context.Context, key string, err error) {
	if err != nil {
		capitan.Error(ctx, SignalDelete, fields(key, 0, err)...)
		return
	}
	capitan.Emit(ctx, SignalDelete, fields(key, 0, err)...)
}

func fields(key string, size int, err error) []capitan.Field {
	out := []capitan.Field{KeyKey.Field(key)}
	if size > 0 {
		out = append(out, KeySize.Field(size))
	}
	if err != nil {
		out = append(out, KeyError.Field(err))
	}
	return out
}
