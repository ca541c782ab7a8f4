// Package clock provides a countdown timer.
package clock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Errors returned by Countdown.
var (
	ErrNonPositive = errors.New("countdown must start above zero")
	ErrRunning     = errors.New("countdown already running")
)

// Option configures a Countdown.
type Option func(*Countdown)

// WithTick sets how long each step lasts. The default is one second.
func WithTick(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.tick = d
		}
	}
}

// Countdown counts down from a starting value once per tick and runs its
// completion handlers when it reaches zero. It can be restarted after each run.
type Countdown struct {
	starting int
	tick     time.Duration

	mu        sync.Mutex
	remaining int
	running   bool
	handlers  []func()
}

// NewCountdown returns a countdown of seconds steps.
func NewCountdown(seconds int, opts ...Option) (*Countdown, error) {
	if seconds <= 0 {
		return nil, ErrNonPositive
	}
	c := &Countdown{
		starting:  seconds,
		tick:      time.Second,
		remaining: seconds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Starting returns the value the countdown starts from.
func (c *Countdown) Starting() int {
	return c.starting
}

// Tick returns the step duration.
func (c *Countdown) Tick() time.Duration {
	return c.tick
}

// Remaining returns the steps left in the current run.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether Start is in progress.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// OnComplete registers fn to run each time the countdown reaches zero.
func (c *Countdown) OnComplete(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// Start blocks until the countdown reaches zero or ctx is done. Either way
// the countdown is reset to its starting value afterwards.
func (c *Countdown) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrRunning
	}
	c.running = true
	c.remaining = c.starting
	c.mu.Unlock()

	emitStarted(ctx, c.starting, c.tick)

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			remaining := c.Remaining()
			c.reset()
			emitCancelled(ctx, remaining, ctx.Err())
			return ctx.Err()

		case <-ticker.C:
			c.mu.Lock()
			c.remaining--
			remaining := c.remaining
			c.mu.Unlock()

			emitTick(ctx, remaining)
			if remaining > 0 {
				continue
			}

			c.mu.Lock()
			handlers := append([]func(){}, c.handlers...)
			c.mu.Unlock()
			for _, fn := range handlers {
				fn()
			}

			c.reset()
			emitCompleted(ctx, c.starting)
			return nil
		}
	}
}

func (c *Countdown) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.starting
	c.running = false
}
