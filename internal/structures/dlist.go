package structures

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

type dlistNode struct {
	value int
	prev  *dlistNode
	next  *dlistNode
}

// DList is a doubly linked list visualizer: both ends are cheap and the
// traversal runs in either direction.
type DList struct {
	animator
	head   *dlistNode
	tail   *dlistNode
	size   int
	render playback.Renderer
}

func NewDList(r playback.Renderer, n notify.Notifier, d playback.Delayer, hold time.Duration) *DList {
	return &DList{animator: newAnimator(n, d, hold), render: r}
}

func (l *DList) Len() int { return l.size }

func (l *DList) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (l *DList) draw(h step.HighlightMap) {
	if l.render != nil {
		l.render.Render(l.Values(), h)
	}
}

// PushFront links v before the head.
func (l *DList) PushFront(ctx context.Context, v int) error {
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.gate.Release()

	if l.size >= MaxListSize {
		return l.reject("list is full", ErrSizeRange)
	}
	node := &dlistNode{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.size++

	l.draw(step.HighlightMap{0: step.TokenInsert})
	if err := l.wait(ctx); err != nil {
		l.draw(nil)
		return err
	}
	l.draw(nil)
	return nil
}

// PushBack links v after the tail.
func (l *DList) PushBack(ctx context.Context, v int) error {
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.gate.Release()

	if l.size >= MaxListSize {
		return l.reject("list is full", ErrSizeRange)
	}
	node := &dlistNode{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
	l.size++

	l.draw(step.HighlightMap{l.size - 1: step.TokenInsert})
	if err := l.wait(ctx); err != nil {
		l.draw(nil)
		return err
	}
	l.draw(nil)
	return nil
}

// PopFront unlinks and returns the head value.
func (l *DList) PopFront(ctx context.Context) (int, error) {
	if err := l.acquire(); err != nil {
		return 0, err
	}
	defer l.gate.Release()

	if l.size == 0 {
		return 0, l.reject("list is empty", ErrEmpty)
	}
	l.draw(step.HighlightMap{0: step.TokenVisit})
	if err := l.wait(ctx); err != nil {
		l.draw(nil)
		return 0, err
	}
	v := l.head.value
	l.head = l.head.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--
	l.draw(nil)
	return v, nil
}

// PopBack unlinks and returns the tail value.
func (l *DList) PopBack(ctx context.Context) (int, error) {
	if err := l.acquire(); err != nil {
		return 0, err
	}
	defer l.gate.Release()

	if l.size == 0 {
		return 0, l.reject("list is empty", ErrEmpty)
	}
	l.draw(step.HighlightMap{l.size - 1: step.TokenVisit})
	if err := l.wait(ctx); err != nil {
		l.draw(nil)
		return 0, err
	}
	v := l.tail.value
	l.tail = l.tail.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--
	l.draw(nil)
	return v, nil
}

// Traverse visits every node, forward or backward.
func (l *DList) Traverse(ctx context.Context, backward bool) error {
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.gate.Release()

	if backward {
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			l.draw(step.HighlightMap{i: step.TokenVisit})
			if err := l.wait(ctx); err != nil {
				l.draw(nil)
				return err
			}
			i--
		}
	} else {
		i := 0
		for n := l.head; n != nil; n = n.next {
			l.draw(step.HighlightMap{i: step.TokenVisit})
			if err := l.wait(ctx); err != nil {
				l.draw(nil)
				return err
			}
			i++
		}
	}
	l.draw(nil)
	return nil
}
