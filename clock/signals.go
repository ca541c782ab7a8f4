package clock

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for countdown events.
var (
	SignalCountdownStarted   = capitan.NewSignal("clock.countdown.started", "Countdown started")
	SignalCountdownTick      = capitan.NewSignal("clock.countdown.tick", "Countdown advanced one step")
	SignalCountdownCompleted = capitan.NewSignal("clock.countdown.completed", "Countdown reached zero")
	SignalCountdownCancelled = capitan.NewSignal("clock.countdown.cancelled", "Countdown stopped before reaching zero")
)

// Keys for typed event data.
var (
	KeyStarting  = capitan.NewIntKey("starting")
	KeyRemaining = capitan.NewIntKey("remaining")
	KeyTick      = capitan.NewDurationKey("tick")
	KeyError     = capitan.NewErrorKey("error")
)

func emitStarted(ctx context.Context, starting int, tick time.Duration) {
	capitan.Emit(ctx, SignalCountdownStarted,
		KeyStarting.Field(starting),
		KeyTick.Field(tick),
	)
}

func emitTick(ctx context.Context, remaining int) {
	capitan.Emit(ctx, SignalCountdownTick,
		KeyRemaining.Field(remaining),
	)
}

func emitCompleted(ctx context.Context, starting int) {
	capitan.Emit(ctx, SignalCountdownCompleted,
		KeyStarting.Field(starting),
	)
}

func emitCancelled(ctx context.Context, remaining int, err error) {
	capitan.Error(context.WithoutCancel(ctx), SignalCountdownCancelled,
		KeyRemaining.Field(remaining),
		KeyError.Field(err),
	)
}
