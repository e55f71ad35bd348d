package structures

import (
	"context"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// MaxStackSize bounds the stack visualizer so it stays drawable.
const MaxStackSize = 16

// Stack is a LIFO visualizer. Every operation that spans more than one
// frame holds the gate for its whole duration.
type Stack struct {
	animator
	items  []int
	render playback.Renderer
}

func NewStack(r playback.Renderer, n notify.Notifier, d playback.Delayer, hold time.Duration) *Stack {
	return &Stack{animator: newAnimator(n, d, hold), render: r}
}

func (s *Stack) Len() int      { return len(s.items) }
func (s *Stack) Items() []int  { return append([]int(nil), s.items...) }
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

func (s *Stack) draw(h step.HighlightMap) {
	if s.render != nil {
		s.render.Render(s.Items(), h)
	}
}

// Push places v on top: highlight the new slot, hold, commit.
func (s *Stack) Push(ctx context.Context, v int) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.gate.Release()

	if len(s.items) >= MaxStackSize {
		return s.reject("stack is full", ErrSizeRange)
	}
	s.items = append(s.items, v)
	top := len(s.items) - 1
	s.draw(step.HighlightMap{top: step.TokenInsert})
	if err := s.wait(ctx); err != nil {
		s.draw(nil)
		return err
	}
	s.draw(nil)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack) Pop(ctx context.Context) (int, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.gate.Release()

	if len(s.items) == 0 {
		return 0, s.reject("stack is empty", ErrEmpty)
	}
	top := len(s.items) - 1
	v := s.items[top]
	s.draw(step.HighlightMap{top: step.TokenVisit})
	if err := s.wait(ctx); err != nil {
		s.draw(nil)
		return 0, err
	}
	s.items = s.items[:top]
	s.draw(nil)
	return v, nil
}

// Peek highlights the top element without removing it.
func (s *Stack) Peek(ctx context.Context) (int, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.gate.Release()

	if len(s.items) == 0 {
		return 0, s.reject("stack is empty", ErrEmpty)
	}
	top := len(s.items) - 1
	s.draw(step.HighlightMap{top: step.TokenVisit})
	if err := s.wait(ctx); err != nil {
		s.draw(nil)
		return 0, err
	}
	s.draw(nil)
	return s.items[top], nil
}

// Clear sweeps the stack empty from the top down. Once started the sweep
// always runs to completion; there is no hard-cancel.
func (s *Stack) Clear(ctx context.Context) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.gate.Release()

	for len(s.items) > 0 {
		top := len(s.items) - 1
		s.draw(step.HighlightMap{top: step.TokenVisit})
		s.waitThrough(ctx)
		s.items = s.items[:top]
		s.draw(nil)
	}
	return nil
}
