package structures

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
)

// DefaultHold is the pause after each animated frame for the simple
// visualizers (everything but the sort playback, which has per-kind delays).
const DefaultHold = 300 * time.Millisecond

// animator carries the shared machinery of every animated operation: the
// per-instance gate, the hold-point delayer, and the notification surface.
type animator struct {
	gate   playback.Gate
	delay  playback.Delayer
	hold   time.Duration
	notify notify.Notifier
}

func newAnimator(n notify.Notifier, d playback.Delayer, hold time.Duration) animator {
	if n == nil {
		n = notify.Discard{}
	}
	if d == nil {
		d = &playback.InstantDelayer{}
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	return animator{delay: d, hold: hold, notify: n}
}

// acquire takes the gate, notifying on rejection.
func (a *animator) acquire() error {
	if !a.gate.TryAcquire() {
		a.notify.Notify("animation in progress", notify.Warn, 2*time.Second)
		return playback.ErrBusy
	}
	return nil
}

// wait suspends at a hold point, propagating cancellation.
func (a *animator) wait(ctx context.Context) error {
	return a.delay.Wait(ctx, a.hold)
}

// waitThrough suspends at a hold point inside a sweep that must run to
// completion once started; cancellation is ignored so the live data and the
// rendered frame never go out of sync.
func (a *animator) waitThrough(ctx context.Context) {
	_ = a.delay.Wait(ctx, a.hold)
}

// reject reports a user-input error through the notifier and returns it.
func (a *animator) reject(msg string, err error) error {
	a.notify.Notify(msg, notify.Warn, 2*time.Second)
	return err
}
