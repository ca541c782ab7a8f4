package collections

import (
	"context"

	"github.com/zoobzio/capitan"
)

// SignalListChanged fires after an AlertList mutation that changed its contents.
var SignalListChanged = capitan.NewSignal("collections.list.changed", "AlertList contents changed")

// Keys for typed event data.
var (
	KeyOp    = capitan.NewStringKey("op")
	KeyCount = capitan.NewIntKey("count")
	KeyLen   = capitan.NewIntKey("len")
)

func emitListChanged(ctx context.Context, op Op, count, length int) {
	capitan.Emit(ctx, SignalListChanged,
		KeyOp.Field(op.String()),
		KeyCount.Field(count),
		KeyLen.Field(length),
	)
}
