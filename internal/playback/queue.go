package playback

import "github.com/san-kum/structviz/internal/step"

// Queue holds a produced step list and a cursor. The list is fixed once
// installed; only the cursor moves. A structural mutation to the live data
// outside playback must discard the queue via Replace(nil), because steps
// recorded against a stale snapshot are no longer valid.
type Queue struct {
	steps  []step.Step
	cursor int
}

// Replace discards any existing steps and cursor and installs a new run.
func (q *Queue) Replace(steps []step.Step) {
	q.steps = steps
	q.cursor = 0
}

// Advance returns the step at the cursor and increments it.
func (q *Queue) Advance() (step.Step, error) {
	if q.cursor >= len(q.steps) {
		return step.Step{}, ErrExhausted
	}
	s := q.steps[q.cursor]
	q.cursor++
	return s, nil
}

// Peek returns the step at the cursor without advancing.
func (q *Queue) Peek() (step.Step, bool) {
	if q.cursor >= len(q.steps) {
		return step.Step{}, false
	}
	return q.steps[q.cursor], true
}

// Exhausted reports whether the cursor has reached the end.
func (q *Queue) Exhausted() bool { return q.cursor >= len(q.steps) }

// Reset rewinds the cursor without touching the steps, for abandoned runs.
func (q *Queue) Reset() { q.cursor = 0 }

func (q *Queue) Len() int { return len(q.steps) }
func (q *Queue) Pos() int { return q.cursor }
