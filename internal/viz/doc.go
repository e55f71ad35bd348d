// Package viz draws frames: live data plus a transient highlight map in,
// styled text out. Nothing here mutates data or keeps state between frames.
package viz
