//go:build swipedebug

package gesture

import "fmt"

func checkInvariants(s DragState) {
	if s.Position < -1 || s.Position > 1 {
		panic(fmt.Sprintf("gesture: position %v outside [-1, 1]", s.Position))
	}
	if s.Dragging && s.Animating {
		panic("gesture: dragging and animating at once")
	}
}
