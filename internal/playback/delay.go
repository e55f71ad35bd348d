package playback

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/step"
)

// Delayer is the scheduling contract between steps: the controller calls
// Wait at each hold point, the only place control yields. Injecting an
// instant implementation makes playback synchronous for tests.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleepDelayer waits in real time, honoring context cancellation.
type SleepDelayer struct{}

func (SleepDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// InstantDelayer returns immediately. It still counts calls so tests can
// assert on the number of hold points.
type InstantDelayer struct {
	Calls int
}

func (d *InstantDelayer) Wait(ctx context.Context, _ time.Duration) error {
	d.Calls++
	return ctx.Err()
}

// Delays carries the hold duration per step kind.
type Delays struct {
	Compare time.Duration
	Swap    time.Duration
	Shift   time.Duration
	Insert  time.Duration
	Visit   time.Duration
}

// DefaultDelays matches the cadence of the original visualizers.
func DefaultDelays() Delays {
	return Delays{
		Compare: 300 * time.Millisecond,
		Swap:    450 * time.Millisecond,
		Shift:   350 * time.Millisecond,
		Insert:  400 * time.Millisecond,
		Visit:   250 * time.Millisecond,
	}
}

// For returns the hold duration for a step kind.
func (d Delays) For(k step.Kind) time.Duration {
	switch k {
	case step.Compare:
		return d.Compare
	case step.Swap:
		return d.Swap
	case step.Shift:
		return d.Shift
	case step.Insert:
		return d.Insert
	case step.Visit:
		return d.Visit
	default:
		return d.Compare
	}
}

// Scale multiplies every hold duration by f, for speed controls.
func (d Delays) Scale(f float64) Delays {
	scale := func(t time.Duration) time.Duration {
		return time.Duration(float64(t) * f)
	}
	return Delays{
		Compare: scale(d.Compare),
		Swap:    scale(d.Swap),
		Shift:   scale(d.Shift),
		Insert:  scale(d.Insert),
		Visit:   scale(d.Visit),
	}
}
