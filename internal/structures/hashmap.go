package structures

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
)

// DefaultBuckets is the fixed bucket count of the hashing visualizers.
// Collisions are the teaching point, so the table never resizes.
const DefaultBuckets = 8

// Entry is one key/value pair in a bucket chain.
type Entry struct {
	Key   string
	Value int
}

// BucketRenderer draws one hash table frame. Highlights are keyed by
// bucket index.
type BucketRenderer interface {
	RenderBuckets(buckets [][]Entry, h step.HighlightMap)
}

// HashMap is a chained hash table visualizer: every operation first
// highlights the hashed bucket, then walks its chain.
type HashMap struct {
	animator
	buckets [][]Entry
	size    int
	render  BucketRenderer
}

func NewHashMap(r BucketRenderer, n notify.Notifier, d playback.Delayer, hold time.Duration) *HashMap {
	return &HashMap{
		animator: newAnimator(n, d, hold),
		buckets:  make([][]Entry, DefaultBuckets),
		render:   r,
	}
}

func (m *HashMap) Len() int { return m.size }

// Buckets returns a copy of the chains for rendering and inspection.
func (m *HashMap) Buckets() [][]Entry {
	out := make([][]Entry, len(m.buckets))
	for i, b := range m.buckets {
		out[i] = append([]Entry(nil), b...)
	}
	return out
}

func (m *HashMap) draw(h step.HighlightMap) {
	if m.render != nil {
		m.render.RenderBuckets(m.Buckets(), h)
	}
}

// BucketFor exposes the hash for display ("key → bucket i").
func (m *HashMap) BucketFor(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(m.buckets)))
}

// Put inserts or updates key. The hashed bucket is highlighted for one
// frame before the chain is touched.
func (m *HashMap) Put(ctx context.Context, key string, value int) error {
	if err := m.acquire(); err != nil {
		return err
	}
	defer m.gate.Release()

	if key == "" {
		return m.reject("key must not be empty", ErrEmptyValue)
	}
	b := m.BucketFor(key)
	m.draw(step.HighlightMap{b: step.TokenVisit})
	if err := m.wait(ctx); err != nil {
		m.draw(nil)
		return err
	}

	for i := range m.buckets[b] {
		if m.buckets[b][i].Key == key {
			m.buckets[b][i].Value = value
			m.draw(step.HighlightMap{b: step.TokenDone})
			m.waitThrough(ctx)
			m.draw(nil)
			return nil
		}
	}
	m.buckets[b] = append(m.buckets[b], Entry{Key: key, Value: value})
	m.size++
	m.draw(step.HighlightMap{b: step.TokenInsert})
	m.waitThrough(ctx)
	m.draw(nil)
	return nil
}

// Get looks key up, highlighting the hashed bucket and then the match.
func (m *HashMap) Get(ctx context.Context, key string) (int, error) {
	if err := m.acquire(); err != nil {
		return 0, err
	}
	defer m.gate.Release()

	if key == "" {
		return 0, m.reject("key must not be empty", ErrEmptyValue)
	}
	b := m.BucketFor(key)
	m.draw(step.HighlightMap{b: step.TokenVisit})
	if err := m.wait(ctx); err != nil {
		m.draw(nil)
		return 0, err
	}

	for _, e := range m.buckets[b] {
		if e.Key == key {
			m.draw(step.HighlightMap{b: step.TokenDone})
			m.waitThrough(ctx)
			m.draw(nil)
			return e.Value, nil
		}
	}
	m.draw(nil)
	return 0, m.reject("key not found", ErrNotFound)
}

// Delete removes key from its chain.
func (m *HashMap) Delete(ctx context.Context, key string) error {
	if err := m.acquire(); err != nil {
		return err
	}
	defer m.gate.Release()

	if key == "" {
		return m.reject("key must not be empty", ErrEmptyValue)
	}
	b := m.BucketFor(key)
	m.draw(step.HighlightMap{b: step.TokenVisit})
	if err := m.wait(ctx); err != nil {
		m.draw(nil)
		return err
	}

	for i, e := range m.buckets[b] {
		if e.Key == key {
			m.buckets[b] = append(m.buckets[b][:i], m.buckets[b][i+1:]...)
			m.size--
			m.draw(nil)
			return nil
		}
	}
	m.draw(nil)
	return m.reject("key not found", ErrNotFound)
}
