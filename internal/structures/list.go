package structures

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// MaxListSize bounds the list visualizers so they stay drawable.
const MaxListSize = 12

type listNode struct {
	value int
	next  *listNode
}

// List is a singly linked list visualizer. Animated operations walk the
// chain node by node, highlighting each visited position.
type List struct {
	animator
	head   *listNode
	size   int
	render playback.Renderer
}

func NewList(r playback.Renderer, n notify.Notifier, d playback.Delayer, hold time.Duration) *List {
	return &List{animator: newAnimator(n, d, hold), render: r}
}

func (l *List) Len() int { return l.size }

// Values returns the node values front to back.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (l *List) draw(h step.HighlightMap) {
	if l.render != nil {
		l.render.Render(l.Values(), h)
	}
}

// walk visits positions 0..stop-1, one frame per node.
func (l *List) walk(ctx context.Context, stop int) error {
	for i := 0; i < stop; i++ {
		l.draw(step.HighlightMap{i: step.TokenVisit})
		if err := l.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// InsertAt walks to position i and links a new node there. i may equal the
// length (append at the tail).
func (l *List) InsertAt(ctx context.Context, i, v int) error {
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.gate.Release()

	if i < 0 || i > l.size {
		return l.reject("index out of range", ErrIndexRange)
	}
	if l.size >= MaxListSize {
		return l.reject("list is full", ErrSizeRange)
	}
	if err := l.walk(ctx, i); err != nil {
		l.draw(nil)
		return err
	}

	node := &listNode{value: v}
	if i == 0 {
		node.next = l.head
		l.head = node
	} else {
		prev := l.head
		for j := 0; j < i-1; j++ {
			prev = prev.next
		}
		node.next = prev.next
		prev.next = node
	}
	l.size++

	l.draw(step.HighlightMap{i: step.TokenInsert})
	if err := l.wait(ctx); err != nil {
		l.draw(nil)
		return err
	}
	l.draw(nil)
	return nil
}

// RemoveAt walks to position i and unlinks it.
func (l *List) RemoveAt(ctx context.Context, i int) (int, error) {
	if err := l.acquire(); err != nil {
		return 0, err
	}
	defer l.gate.Release()

	if l.size == 0 {
		return 0, l.reject("list is empty", ErrEmpty)
	}
	if i < 0 || i >= l.size {
		return 0, l.reject("index out of range", ErrIndexRange)
	}
	if err := l.walk(ctx, i); err != nil {
		l.draw(nil)
		return 0, err
	}

	l.draw(step.HighlightMap{i: step.TokenVisit})
	if err := l.wait(ctx); err != nil {
		l.draw(nil)
		return 0, err
	}

	var removed int
	if i == 0 {
		removed = l.head.value
		l.head = l.head.next
	} else {
		prev := l.head
		for j := 0; j < i-1; j++ {
			prev = prev.next
		}
		removed = prev.next.value
		prev.next = prev.next.next
	}
	l.size--
	l.draw(nil)
	return removed, nil
}

// Search walks the chain until it finds v, leaving the match highlighted
// for one frame.
func (l *List) Search(ctx context.Context, v int) (int, error) {
	if err := l.acquire(); err != nil {
		return 0, err
	}
	defer l.gate.Release()

	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.draw(step.HighlightMap{i: step.TokenDone})
			if err := l.wait(ctx); err != nil {
				l.draw(nil)
				return 0, err
			}
			l.draw(nil)
			return i, nil
		}
		l.draw(step.HighlightMap{i: step.TokenVisit})
		if err := l.wait(ctx); err != nil {
			l.draw(nil)
			return 0, err
		}
		i++
	}
	l.draw(nil)
	return 0, l.reject("value not found", ErrNotFound)
}

// Traverse visits every node front to back.
func (l *List) Traverse(ctx context.Context) error {
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.gate.Release()

	if err := l.walk(ctx, l.size); err != nil {
		l.draw(nil)
		return err
	}
	l.draw(nil)
	return nil
}
