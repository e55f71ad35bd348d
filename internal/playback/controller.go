package playback

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/step"
)

// Renderer draws one frame from a snapshot of the live data plus a
// transient highlight map. Drawing is its only side effect; it never
// mutates data.
type Renderer interface {
	Render(live []int, h step.HighlightMap)
}

// State is the playback state machine position.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Complete:
		return "complete"
	default:
		return "idle"
	}
}

// Controller replays a recorded step queue against the live sequence under
// three drivers: manual single-step, autoplay ticks, and pause/resume. The
// visible state always equals the original snapshot with every step up to
// and including the cursor applied, never more, never less.
//
// Each step is atomic: highlight render, hold, mutation, commit render. A
// pause takes effect between steps, never mid-step.
type Controller struct {
	live    []int
	queue   Queue
	state   State
	gate    *Gate
	render  Renderer
	notify  notify.Notifier
	delay   Delayer
	delays  Delays
	last    step.Step
	hasLast bool
}

func New(gate *Gate, r Renderer, n notify.Notifier, d Delayer, delays Delays) *Controller {
	if n == nil {
		n = notify.Discard{}
	}
	return &Controller{
		gate:   gate,
		render: r,
		notify: n,
		delay:  d,
		delays: delays,
	}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Pos() int     { return c.queue.Pos() }
func (c *Controller) Len() int     { return c.queue.Len() }

// Last returns the most recently applied step, for narration display.
func (c *Controller) Last() (step.Step, bool) { return c.last, c.hasLast }

// NextKind reports the kind of the step the next tick will apply.
func (c *Controller) NextKind() (step.Kind, bool) {
	s, ok := c.queue.Peek()
	return s.Kind, ok
}

// Prepare installs a new run: it binds the live sequence the steps were
// recorded against and resets the cursor. Valid from Idle and Complete.
// An empty step list completes immediately.
func (c *Controller) Prepare(live []int, steps []step.Step) error {
	if c.state == Playing {
		return ErrBusy
	}
	if c.state == Paused {
		return ErrWrongState
	}
	if c.gate.Held() {
		return ErrBusy
	}
	c.live = live
	c.queue.Replace(steps)
	c.hasLast = false
	if c.queue.Exhausted() {
		c.state = Complete
	} else {
		c.state = Idle
	}
	c.render.Render(c.snapshot(), nil)
	return nil
}

// Play enters autoplay. Valid from Idle and Paused; a no-op when there is
// nothing to play. The caller drives the loop with Tick (or Run).
func (c *Controller) Play() error {
	switch c.state {
	case Playing:
		return ErrBusy
	case Complete:
		return nil
	}
	if c.queue.Exhausted() {
		return nil
	}
	if !c.gate.TryAcquire() {
		return ErrBusy
	}
	c.state = Playing
	return nil
}

// Pause stops the autoplay loop before its next step. The step in flight,
// if any, has already completed: there is no partial-step rollback.
func (c *Controller) Pause() error {
	if c.state != Playing {
		return ErrWrongState
	}
	c.state = Paused
	c.gate.Release()
	return nil
}

// Tick applies exactly one step while Playing; otherwise it does nothing.
// On exhaustion it transitions to Complete and renders the final frame.
func (c *Controller) Tick(ctx context.Context) error {
	if c.state != Playing {
		return nil
	}
	return c.applyNext(ctx)
}

// Run plays the queue to completion, ticking until the state leaves
// Playing. Used by the non-interactive drivers with a real-time delayer.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Play(); err != nil {
		return err
	}
	for c.state == Playing {
		if err := c.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}

// StepOnce applies exactly one step then stops. Valid from Idle and Paused;
// a no-op from Complete; rejected while Playing.
func (c *Controller) StepOnce(ctx context.Context) error {
	switch c.state {
	case Playing:
		return ErrBusy
	case Complete:
		return nil
	}
	if c.queue.Exhausted() {
		return nil
	}
	if !c.gate.TryAcquire() {
		return ErrBusy
	}
	err := c.applyNext(ctx)
	if c.state != Complete {
		// On exhaustion applyNext has already released the gate.
		c.gate.Release()
	}
	return err
}

// Invalidate discards the prepared queue after a structural mutation to the
// live data. Steps recorded against the old snapshot no longer apply.
// Play and StepOnce become no-ops until a new run is prepared.
func (c *Controller) Invalidate() {
	if c.state == Playing {
		return
	}
	c.queue.Replace(nil)
	c.state = Idle
	c.hasLast = false
}

// applyNext runs one step's render-hold-mutate-render sequence. A step once
// begun always completes, even if the context is canceled during the hold.
func (c *Controller) applyNext(ctx context.Context) error {
	s, err := c.queue.Advance()
	if err != nil {
		// Unreachable given the state guards. Abort the run, leave data as is.
		c.abort()
		c.notify.Notify("playback aborted: step queue exhausted", notify.Error, 3*time.Second)
		return err
	}

	c.render.Render(c.snapshot(), s.Highlights(step.PhaseActive))
	waitErr := c.delay.Wait(ctx, c.delays.For(s.Kind))

	if err := step.Apply(c.live, s); err != nil {
		c.abort()
		c.notify.Notify("playback aborted: "+err.Error(), notify.Error, 3*time.Second)
		return err
	}
	c.last, c.hasLast = s, true
	c.render.Render(c.snapshot(), s.Highlights(step.PhaseCommit))

	if c.queue.Exhausted() {
		c.state = Complete
		c.gate.Release()
		c.render.Render(c.snapshot(), nil)
		return nil
	}

	if waitErr != nil {
		// Cancellation lands between steps, after the commit.
		if c.state == Playing {
			c.state = Paused
			c.gate.Release()
		}
		return waitErr
	}
	return nil
}

func (c *Controller) abort() {
	if c.state == Playing {
		c.gate.Release()
	}
	c.state = Idle
}

func (c *Controller) snapshot() []int {
	s := make([]int, len(c.live))
	copy(s, c.live)
	return s
}
