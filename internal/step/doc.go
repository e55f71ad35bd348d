// Package step defines the replayable step records emitted by the pure
// algorithm producers and the mutation rules that commit them to live data.
//
// A producer runs an algorithm to completion over its own copy of a
// snapshot and records one Step per comparison or data movement, in the
// algorithm's own order. Applying the recorded list in order to a fresh
// copy of the same snapshot reproduces the producer's working copy
// element-wise after every prefix. Nothing in this package renders, waits,
// or touches the live sequence.
package step
