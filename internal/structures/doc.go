// Package structures holds the per-visualizer data models. Each owns its
// live data and a gate; animated operations hold the gate end to end and
// are rejected, not interleaved, while it is held.
package structures
