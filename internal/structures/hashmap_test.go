package structures

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

type bucketRecorder struct {
	highlights []step.HighlightMap
}

func (r *bucketRecorder) RenderBuckets(buckets [][]Entry, h step.HighlightMap) {
	r.highlights = append(r.highlights, h)
}

func TestHashMapPutGetDelete(t *testing.T) {
	m := NewHashMap(&bucketRecorder{}, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	if err := m.Put(ctx, "alpha", 1); err != nil {
		t.Fatal(err)
	}
	if err := m.Put(ctx, "beta", 2); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}

	v, err := m.Get(ctx, "alpha")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if v != 1 {
		t.Errorf("expected 1, got %d", v)
	}

	// Update in place does not grow the map.
	if err := m.Put(ctx, "alpha", 10); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 2 {
		t.Errorf("update should not grow the map, len %d", m.Len())
	}
	v, _ = m.Get(ctx, "alpha")
	if v != 10 {
		t.Errorf("expected updated value 10, got %d", v)
	}

	if err := m.Delete(ctx, "alpha"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get(ctx, "alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := m.Delete(ctx, "alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHashMapEmptyKey(t *testing.T) {
	m := NewHashMap(nil, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	if err := m.Put(ctx, "", 1); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("put: expected ErrEmptyValue, got %v", err)
	}
	if _, err := m.Get(ctx, ""); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("get: expected ErrEmptyValue, got %v", err)
	}
	if err := m.Delete(ctx, ""); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("delete: expected ErrEmptyValue, got %v", err)
	}
	if m.Len() != 0 {
		t.Error("rejected operations must not mutate")
	}
}

func TestHashMapHighlightsHashedBucket(t *testing.T) {
	rec := &bucketRecorder{}
	m := NewHashMap(rec, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	key := "collision"
	want := m.BucketFor(key)
	if err := m.Put(ctx, key, 7); err != nil {
		t.Fatal(err)
	}

	var sawVisit bool
	for _, h := range rec.highlights {
		if h[want] == step.TokenVisit {
			sawVisit = true
		}
	}
	if !sawVisit {
		t.Errorf("bucket %d was never highlighted", want)
	}
}

func TestHashMapChaining(t *testing.T) {
	m := NewHashMap(nil, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	// Enough keys that some bucket must chain.
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, k := range keys {
		if err := m.Put(ctx, k, i); err != nil {
			t.Fatal(err)
		}
	}

	var chained bool
	for _, b := range m.Buckets() {
		if len(b) > 1 {
			chained = true
		}
	}
	if !chained {
		t.Error("expected at least one chained bucket")
	}

	for i, k := range keys {
		v, err := m.Get(ctx, k)
		if err != nil {
			t.Fatalf("get %q: %v", k, err)
		}
		if v != i {
			t.Errorf("get %q: expected %d, got %d", k, i, v)
		}
	}
}

func TestHashSetAddContainsRemove(t *testing.T) {
	s := NewHashSet(&bucketRecorder{}, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	if err := s.Add(ctx, 5); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, 13); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, 5); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 values, got %d", s.Len())
	}

	ok, err := s.Contains(ctx, 13)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected 13 to be present")
	}
	ok, err = s.Contains(ctx, 99)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("99 should be absent")
	}

	if err := s.Remove(ctx, 5); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(ctx, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 value, got %d", s.Len())
	}
}

func TestHashSetNegativeValues(t *testing.T) {
	s := NewHashSet(nil, nil, &playback.InstantDelayer{}, 0)
	ctx := context.Background()

	if err := s.Add(ctx, -7); err != nil {
		t.Fatalf("negative value add: %v", err)
	}
	ok, err := s.Contains(ctx, -7)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected -7 to be present")
	}
}
