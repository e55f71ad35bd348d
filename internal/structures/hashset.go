package structures

import (
	"context"
	"strconv"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// HashSet is a chained hash set of ints, sharing the hash map's bucket
// rendering: values are shown as entries with an empty payload.
type HashSet struct {
	animator
	buckets [][]int
	size    int
	render  BucketRenderer
}

func NewHashSet(r BucketRenderer, n notify.Notifier, d playback.Delayer, hold time.Duration) *HashSet {
	return &HashSet{
		animator: newAnimator(n, d, hold),
		buckets:  make([][]int, DefaultBuckets),
		render:   r,
	}
}

func (s *HashSet) Len() int { return s.size }

// Buckets projects the int chains into entry chains for the renderer.
func (s *HashSet) Buckets() [][]Entry {
	out := make([][]Entry, len(s.buckets))
	for i, b := range s.buckets {
		for _, v := range b {
			out[i] = append(out[i], Entry{Key: strconv.Itoa(v), Value: v})
		}
	}
	return out
}

func (s *HashSet) draw(h step.HighlightMap) {
	if s.render != nil {
		s.render.RenderBuckets(s.Buckets(), h)
	}
}

func (s *HashSet) bucketFor(v int) int {
	b := v % len(s.buckets)
	if b < 0 {
		b += len(s.buckets)
	}
	return b
}

// Add inserts v, rejecting duplicates.
func (s *HashSet) Add(ctx context.Context, v int) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.gate.Release()

	b := s.bucketFor(v)
	s.draw(step.HighlightMap{b: step.TokenVisit})
	if err := s.wait(ctx); err != nil {
		s.draw(nil)
		return err
	}

	for _, x := range s.buckets[b] {
		if x == v {
			s.draw(nil)
			return s.reject("value already present", ErrDuplicate)
		}
	}
	s.buckets[b] = append(s.buckets[b], v)
	s.size++
	s.draw(step.HighlightMap{b: step.TokenInsert})
	s.waitThrough(ctx)
	s.draw(nil)
	return nil
}

// Contains reports membership, highlighting the hashed bucket.
func (s *HashSet) Contains(ctx context.Context, v int) (bool, error) {
	if err := s.acquire(); err != nil {
		return false, err
	}
	defer s.gate.Release()

	b := s.bucketFor(v)
	s.draw(step.HighlightMap{b: step.TokenVisit})
	if err := s.wait(ctx); err != nil {
		s.draw(nil)
		return false, err
	}
	for _, x := range s.buckets[b] {
		if x == v {
			s.draw(step.HighlightMap{b: step.TokenDone})
			s.waitThrough(ctx)
			s.draw(nil)
			return true, nil
		}
	}
	s.draw(nil)
	return false, nil
}

// Remove deletes v from its chain.
func (s *HashSet) Remove(ctx context.Context, v int) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.gate.Release()

	b := s.bucketFor(v)
	s.draw(step.HighlightMap{b: step.TokenVisit})
	if err := s.wait(ctx); err != nil {
		s.draw(nil)
		return err
	}
	for i, x := range s.buckets[b] {
		if x == v {
			s.buckets[b] = append(s.buckets[b][:i], s.buckets[b][i+1:]...)
			s.size--
			s.draw(nil)
			return nil
		}
	}
	s.draw(nil)
	return s.reject("value not found", ErrNotFound)
}
