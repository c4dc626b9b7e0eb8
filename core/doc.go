// Package core is the host application around the slider.
//
// Allowed here:
// - model routing, message contracts, key registry
// - status/footer chrome and the outcome banner
//
// Not allowed here:
// - gesture decisions or slider rendering internals
package core
