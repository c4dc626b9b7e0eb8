// Package slider hosts the gesture controller as a bubbletea component.
//
// Allowed here:
// - mouse decoding, hit-testing, track measurement
// - settle and arrow timers delivered as tea messages
// - lipgloss rendering of the track, orb, labels, and arrows
//
// Not allowed here:
// - gesture decisions; those live in internal/gesture
package slider
