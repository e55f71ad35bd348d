// Package playback drains a recorded step queue against the live data under
// manual single-step, tick-driven autoplay, and pause/resume.
//
// The model is single-threaded and cooperative: every animated operation is
// synchronous work separated by explicit hold points (Delayer.Wait), and the
// Gate serializes whole operations across those holds. There is no
// preemption, so each step's render-mutate-render sequence is atomic with
// respect to every other operation.
package playback
