package playback

// Gate is the busy flag shared by every animated operation on one
// visualizer instance. Scheduling is single-threaded and cooperative, so a
// plain bool serializes operations: an operation that spans more than one
// frame holds the gate for its whole duration, and anything attempted while
// it is held is rejected rather than interleaved.
type Gate struct {
	held bool
}

// TryAcquire takes the gate, reporting false if it is already held.
func (g *Gate) TryAcquire() bool {
	if g.held {
		return false
	}
	g.held = true
	return true
}

// Release frees the gate. Releasing an idle gate is a no-op.
func (g *Gate) Release() { g.held = false }

// Held reports whether an animated operation is in progress.
func (g *Gate) Held() bool { return g.held }
