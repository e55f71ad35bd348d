package structures

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

type treeRecorder struct {
	highlights []step.HighlightMap
}

func (r *treeRecorder) RenderTree(root *BSTNode, h step.HighlightMap) {
	r.highlights = append(r.highlights, h)
}

func newTestBST(t *testing.T, values ...int) (*BST, *treeRecorder) {
	t.Helper()
	rec := &treeRecorder{}
	b := NewBST(rec, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()
	for _, v := range values {
		if err := b.Insert(ctx, v); err != nil {
			t.Fatalf("insert %d: %v", v, err)
		}
	}
	return b, rec
}

func TestBSTInsertKeepsOrder(t *testing.T) {
	values := []int{50, 30, 70, 20, 40, 60, 80}
	b, _ := newTestBST(t, values...)

	if b.Len() != len(values) {
		t.Fatalf("expected %d nodes, got %d", len(values), b.Len())
	}
	got := b.Values()
	want := append([]int(nil), values...)
	sort.Ints(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-order expected %v, got %v", want, got)
		}
	}

	ctx := context.Background()
	if err := b.Insert(ctx, 40); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if b.Len() != len(values) {
		t.Error("duplicate insert must not mutate")
	}
}

func TestBSTSearchPath(t *testing.T) {
	b, rec := newTestBST(t, 50, 30, 70, 20, 40)
	ctx := context.Background()

	rec.highlights = nil
	found, err := b.Search(ctx, 40)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !found {
		t.Fatal("expected 40 to be found")
	}

	// The search path 50 → 30 → 40 is visited in order, match marked done.
	var path []int
	var done []int
	for _, h := range rec.highlights {
		for v, tok := range h {
			switch tok {
			case step.TokenVisit:
				path = append(path, v)
			case step.TokenDone:
				done = append(done, v)
			}
		}
	}
	if len(path) != 2 || path[0] != 50 || path[1] != 30 {
		t.Errorf("expected visit path [50 30], got %v", path)
	}
	if len(done) != 1 || done[0] != 40 {
		t.Errorf("expected done mark on 40, got %v", done)
	}

	if _, err := b.Search(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBSTRemove(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		values []int
		remove int
	}{
		{"leaf", []int{50, 30, 70}, 30},
		{"one child", []int{50, 30, 20}, 30},
		{"two children", []int{50, 30, 70, 60, 80}, 70},
		{"root", []int{50, 30, 70}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBST(t, tt.values...)
			if err := b.Remove(ctx, tt.remove); err != nil {
				t.Fatalf("remove failed: %v", err)
			}
			if b.Len() != len(tt.values)-1 {
				t.Errorf("expected %d nodes, got %d", len(tt.values)-1, b.Len())
			}
			got := b.Values()
			if !sort.IntsAreSorted(got) {
				t.Errorf("in-order no longer sorted: %v", got)
			}
			for _, v := range got {
				if v == tt.remove {
					t.Errorf("%d still present after removal", tt.remove)
				}
			}
		})
	}

	b, _ := newTestBST(t, 10)
	if err := b.Remove(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBSTInOrderVisitsSorted(t *testing.T) {
	b, rec := newTestBST(t, 5, 3, 8, 1, 4)
	ctx := context.Background()

	rec.highlights = nil
	if err := b.InOrder(ctx); err != nil {
		t.Fatal(err)
	}

	var visited []int
	for _, h := range rec.highlights {
		for v, tok := range h {
			if tok == step.TokenVisit {
				visited = append(visited, v)
			}
		}
	}
	want := []int{1, 3, 4, 5, 8}
	if len(visited) != len(want) {
		t.Fatalf("expected %v, visited %v", want, visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("expected visit order %v, got %v", want, visited)
		}
	}
}

func TestBSTGateRejectsWhileHeld(t *testing.T) {
	b, _ := newTestBST(t, 5)
	ctx := context.Background()

	if !b.gate.TryAcquire() {
		t.Fatal("gate acquire failed")
	}
	if err := b.Insert(ctx, 7); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if _, err := b.Search(ctx, 5); !errors.Is(err, playback.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if b.Len() != 1 {
		t.Error("rejected operations must not mutate")
	}
}
