package structures

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/structviz/internal/playback"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue(&seqRecorder{}, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	for _, v := range []int{10, 20, 30} {
		if err := q.Enqueue(ctx, v); err != nil {
			t.Fatalf("enqueue %d: %v", v, err)
		}
	}

	front, err := q.Front(ctx)
	if err != nil {
		t.Fatalf("front failed: %v", err)
	}
	if front != 10 {
		t.Errorf("expected front 10, got %d", front)
	}

	for _, want := range []int{10, 20, 30} {
		v, err := q.Dequeue(ctx)
		if err != nil {
			t.Fatalf("dequeue: %v", err)
		}
		if v != want {
			t.Errorf("expected %d, got %d", want, v)
		}
	}
	if !q.IsEmpty() {
		t.Error("queue should be empty")
	}
}

func TestQueueEmptyAndFull(t *testing.T) {
	q := NewQueue(nil, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	if _, err := q.Dequeue(ctx); !errors.Is(err, ErrEmpty) {
		t.Errorf("dequeue empty: expected ErrEmpty, got %v", err)
	}
	if _, err := q.Front(ctx); !errors.Is(err, ErrEmpty) {
		t.Errorf("front empty: expected ErrEmpty, got %v", err)
	}

	for i := 0; i < MaxQueueSize; i++ {
		if err := q.Enqueue(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	if err := q.Enqueue(ctx, 99); !errors.Is(err, ErrSizeRange) {
		t.Errorf("enqueue full: expected ErrSizeRange, got %v", err)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue(nil, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		if err := q.Enqueue(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	if err := q.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if !q.IsEmpty() {
		t.Error("expected empty queue after clear")
	}
}

func TestQueueGateExclusivity(t *testing.T) {
	q := NewQueue(nil, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	if !q.gate.TryAcquire() {
		t.Fatal("gate acquire failed")
	}
	if err := q.Enqueue(ctx, 1); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if _, err := q.Dequeue(ctx); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if q.Len() != 0 {
		t.Error("rejected operations must not mutate")
	}
}
