// Package gesture is the drag-to-confirm state machine.
//
// Allowed here:
// - drag state, gesture sessions, zone/outcome classification
// - settle timing and listener attach/detach driven by state transitions
//
// Not allowed here:
// - rendering, terminal input decoding, or any bubbletea dependency
package gesture
