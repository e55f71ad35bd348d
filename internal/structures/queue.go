package structures

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// MaxQueueSize bounds the queue visualizer so it stays drawable.
const MaxQueueSize = 16

// Queue is a FIFO visualizer. Position 0 is the front.
type Queue struct {
	animator
	items  []int
	render playback.Renderer
}

func NewQueue(r playback.Renderer, n notify.Notifier, d playback.Delayer, hold time.Duration) *Queue {
	return &Queue{animator: newAnimator(n, d, hold), render: r}
}

func (q *Queue) Len() int      { return len(q.items) }
func (q *Queue) Items() []int  { return append([]int(nil), q.items...) }
func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }

func (q *Queue) draw(h step.HighlightMap) {
	if q.render != nil {
		q.render.Render(q.Items(), h)
	}
}

// Enqueue appends v at the back.
func (q *Queue) Enqueue(ctx context.Context, v int) error {
	if err := q.acquire(); err != nil {
		return err
	}
	defer q.gate.Release()

	if len(q.items) >= MaxQueueSize {
		return q.reject("queue is full", ErrSizeRange)
	}
	q.items = append(q.items, v)
	back := len(q.items) - 1
	q.draw(step.HighlightMap{back: step.TokenInsert})
	if err := q.wait(ctx); err != nil {
		q.draw(nil)
		return err
	}
	q.draw(nil)
	return nil
}

// Dequeue removes and returns the front element.
func (q *Queue) Dequeue(ctx context.Context) (int, error) {
	if err := q.acquire(); err != nil {
		return 0, err
	}
	defer q.gate.Release()

	if len(q.items) == 0 {
		return 0, q.reject("queue is empty", ErrEmpty)
	}
	v := q.items[0]
	q.draw(step.HighlightMap{0: step.TokenVisit})
	if err := q.wait(ctx); err != nil {
		q.draw(nil)
		return 0, err
	}
	q.items = q.items[1:]
	q.draw(nil)
	return v, nil
}

// Front highlights the front element without removing it.
func (q *Queue) Front(ctx context.Context) (int, error) {
	if err := q.acquire(); err != nil {
		return 0, err
	}
	defer q.gate.Release()

	if len(q.items) == 0 {
		return 0, q.reject("queue is empty", ErrEmpty)
	}
	q.draw(step.HighlightMap{0: step.TokenVisit})
	if err := q.wait(ctx); err != nil {
		q.draw(nil)
		return 0, err
	}
	q.draw(nil)
	return q.items[0], nil
}

// Clear drains the queue from the front. The sweep runs to completion once
// started.
func (q *Queue) Clear(ctx context.Context) error {
	if err := q.acquire(); err != nil {
		return err
	}
	defer q.gate.Release()

	for len(q.items) > 0 {
		q.draw(step.HighlightMap{0: step.TokenVisit})
		q.waitThrough(ctx)
		q.items = q.items[1:]
		q.draw(nil)
	}
	return nil
}
