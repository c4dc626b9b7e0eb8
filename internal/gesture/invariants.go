//go:build !swipedebug

package gesture

func checkInvariants(DragState) {}
