package structures

import (
	"math/rand"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// Array size bounds for randomized fills.
const (
	MinArraySize = 1
	MaxArraySize = 64
)

// Array is the sorting visualizer's live data: a sequence plus the playback
// controller that replays recorded sort runs against it. Direct mutations
// and playback share one gate, and every direct mutation invalidates any
// prepared run, because its steps were recorded against a stale snapshot.
type Array struct {
	values []int
	gate   *playback.Gate
	ctrl   *playback.Controller
	render playback.Renderer
	notify notify.Notifier
}

func NewArray(values []int, r playback.Renderer, n notify.Notifier, d playback.Delayer, delays playback.Delays) *Array {
	if n == nil {
		n = notify.Discard{}
	}
	gate := &playback.Gate{}
	a := &Array{
		values: append([]int(nil), values...),
		gate:   gate,
		ctrl:   playback.New(gate, r, n, d, delays),
		render: r,
		notify: n,
	}
	return a
}

// Controller exposes the playback control surface (play, pause, step once).
func (a *Array) Controller() *playback.Controller { return a.ctrl }

// Gate exposes the shared busy flag for sibling animated operations.
func (a *Array) Gate() *playback.Gate { return a.gate }

// Values returns a copy of the live sequence.
func (a *Array) Values() []int { return append([]int(nil), a.values...) }

func (a *Array) Len() int { return len(a.values) }

// PrepareSort records a fresh run of the selected algorithm over a snapshot
// of the live data and loads it into the playback queue. Rejected while the
// gate is held or when there is nothing to sort.
func (a *Array) PrepareSort(algo step.Algorithm) error {
	if a.gate.Held() {
		return playback.ErrBusy
	}
	if len(a.values) < 2 {
		a.notify.Notify("need at least two elements to sort", notify.Warn, 2*time.Second)
		return ErrTooShort
	}
	steps, err := step.Produce(algo, a.values)
	if err != nil {
		a.notify.Notify(err.Error(), notify.Error, 3*time.Second)
		return err
	}
	return a.ctrl.Prepare(a.values, steps)
}

// Insert adds v at position i, shifting the tail right.
func (a *Array) Insert(i, v int) error {
	if a.gate.Held() {
		a.notify.Notify("animation in progress", notify.Warn, 2*time.Second)
		return playback.ErrBusy
	}
	if i < 0 || i > len(a.values) {
		a.notify.Notify("index out of range", notify.Warn, 2*time.Second)
		return ErrIndexRange
	}
	if len(a.values) >= MaxArraySize {
		a.notify.Notify("array is full", notify.Warn, 2*time.Second)
		return ErrSizeRange
	}
	a.values = append(a.values, 0)
	copy(a.values[i+1:], a.values[i:])
	a.values[i] = v
	a.mutated()
	return nil
}

// Delete removes the element at position i.
func (a *Array) Delete(i int) error {
	if a.gate.Held() {
		a.notify.Notify("animation in progress", notify.Warn, 2*time.Second)
		return playback.ErrBusy
	}
	if i < 0 || i >= len(a.values) {
		a.notify.Notify("index out of range", notify.Warn, 2*time.Second)
		return ErrIndexRange
	}
	a.values = append(a.values[:i], a.values[i+1:]...)
	a.mutated()
	return nil
}

// Set overwrites the element at position i.
func (a *Array) Set(i, v int) error {
	if a.gate.Held() {
		a.notify.Notify("animation in progress", notify.Warn, 2*time.Second)
		return playback.ErrBusy
	}
	if i < 0 || i >= len(a.values) {
		a.notify.Notify("index out of range", notify.Warn, 2*time.Second)
		return ErrIndexRange
	}
	a.values[i] = v
	a.mutated()
	return nil
}

// Randomize replaces the live data with size random values in [1, 99].
func (a *Array) Randomize(size int, seed int64) error {
	if a.gate.Held() {
		a.notify.Notify("animation in progress", notify.Warn, 2*time.Second)
		return playback.ErrBusy
	}
	if size < MinArraySize || size > MaxArraySize {
		a.notify.Notify("size out of range", notify.Warn, 2*time.Second)
		return ErrSizeRange
	}
	rng := rand.New(rand.NewSource(seed))
	a.values = make([]int, size)
	for i := range a.values {
		a.values[i] = rng.Intn(99) + 1
	}
	a.mutated()
	return nil
}

// mutated runs after every successful structural mutation: the prepared
// queue is stale, and the display needs a fresh plain frame.
func (a *Array) mutated() {
	a.ctrl.Invalidate()
	if a.render != nil {
		a.render.Render(a.Values(), nil)
	}
}
