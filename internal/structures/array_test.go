package structures

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

type nullRenderer struct{ calls int }

func (r *nullRenderer) Render(live []int, h step.HighlightMap) { r.calls++ }

func newTestArray(values []int) (*Array, *notify.Recorder) {
	toasts := &notify.Recorder{}
	a := NewArray(values, &nullRenderer{}, toasts, &playback.InstantDelayer{}, playback.DefaultDelays())
	return a, toasts
}

func TestArraySortPlayback(t *testing.T) {
	a, _ := newTestArray([]int{5, 3, 4, 1})
	if err := a.PrepareSort(step.BubbleSort); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if err := a.Controller().Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	got := a.Values()
	want := []int{1, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values[%d]: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestArrayPrepareSortTooShort(t *testing.T) {
	a, toasts := newTestArray([]int{7})
	if err := a.PrepareSort(step.BubbleSort); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
	if _, ok := toasts.Last(); !ok {
		t.Error("user-facing rejection should notify")
	}
}

func TestArrayStructuralMutationInvalidatesRun(t *testing.T) {
	a, _ := newTestArray([]int{3, 1, 2})
	if err := a.PrepareSort(step.InsertionSort); err != nil {
		t.Fatal(err)
	}
	if a.Controller().Len() == 0 {
		t.Fatal("expected a prepared queue")
	}

	tests := []struct {
		name   string
		mutate func() error
	}{
		{"insert", func() error { return a.Insert(0, 9) }},
		{"delete", func() error { return a.Delete(0) }},
		{"set", func() error { return a.Set(0, 42) }},
		{"randomize", func() error { return a.Randomize(5, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := a.PrepareSort(step.InsertionSort); err != nil {
				t.Fatal(err)
			}
			if err := tt.mutate(); err != nil {
				t.Fatalf("mutation failed: %v", err)
			}
			if a.Controller().Len() != 0 {
				t.Error("structural mutation must clear the prepared queue")
			}
			if err := a.Controller().Play(); err != nil {
				t.Errorf("play after invalidation should be a no-op, got %v", err)
			}
			if a.Controller().State() != playback.Idle {
				t.Errorf("expected Idle, got %v", a.Controller().State())
			}
		})
	}
}

func TestArrayMutationsRejectedWhileBusy(t *testing.T) {
	a, _ := newTestArray([]int{4, 2, 3, 1})
	if err := a.PrepareSort(step.BubbleSort); err != nil {
		t.Fatal(err)
	}
	if err := a.Controller().Play(); err != nil {
		t.Fatal(err)
	}

	before := a.Values()
	if err := a.Insert(0, 9); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("insert while playing: expected ErrBusy, got %v", err)
	}
	if err := a.Delete(0); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("delete while playing: expected ErrBusy, got %v", err)
	}
	if err := a.Set(0, 1); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("set while playing: expected ErrBusy, got %v", err)
	}
	if err := a.Randomize(4, 1); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("randomize while playing: expected ErrBusy, got %v", err)
	}
	if err := a.PrepareSort(step.BubbleSort); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("prepare while playing: expected ErrBusy, got %v", err)
	}
	after := a.Values()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("rejected operations must not change the live data")
		}
	}
}

func TestArrayBounds(t *testing.T) {
	a, _ := newTestArray([]int{1, 2, 3})

	if err := a.Insert(-1, 5); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if err := a.Insert(4, 5); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if err := a.Delete(3); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if err := a.Set(3, 0); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if err := a.Randomize(0, 1); !errors.Is(err, ErrSizeRange) {
		t.Errorf("expected ErrSizeRange, got %v", err)
	}
	if err := a.Randomize(MaxArraySize+1, 1); !errors.Is(err, ErrSizeRange) {
		t.Errorf("expected ErrSizeRange, got %v", err)
	}

	// Insert at len appends.
	if err := a.Insert(3, 9); err != nil {
		t.Fatalf("append insert failed: %v", err)
	}
	got := a.Values()
	if got[3] != 9 || len(got) != 4 {
		t.Errorf("expected append of 9, got %v", got)
	}
}

func TestArrayRandomizeDeterministicPerSeed(t *testing.T) {
	a, _ := newTestArray(nil)
	if err := a.Randomize(8, 7); err != nil {
		t.Fatal(err)
	}
	first := a.Values()

	b, _ := newTestArray(nil)
	if err := b.Randomize(8, 7); err != nil {
		t.Fatal(err)
	}
	second := b.Values()

	for i := range first {
		if first[i] != second[i] {
			t.Fatal("same seed must give same values")
		}
		if first[i] < 1 || first[i] > 99 {
			t.Errorf("value %d outside [1,99]", first[i])
		}
	}

	// Sorting the randomized data still round-trips.
	if err := a.PrepareSort(step.SelectionSort); err != nil {
		t.Fatal(err)
	}
	if err := a.Controller().Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !sort.IntsAreSorted(a.Values()) {
		t.Errorf("expected sorted values, got %v", a.Values())
	}
}
