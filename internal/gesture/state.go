package gesture

// DragState is the per-control state that persists across gestures.
type DragState struct {
	Position  float64
	Dragging  bool
	Animating bool
}

// Idle reports whether a new gesture may begin.
func (s DragState) Idle() bool {
	return !s.Dragging && !s.Animating
}

// Session is the bookkeeping for one drag. It lives from Start until End.
type Session struct {
	ID              string
	StartCoordinate float64
	StartPosition   float64
}

type Zone int

const (
	ZoneNeutral Zone = iota
	ZoneDecline
	ZoneAccept
)

func (z Zone) String() string {
	switch z {
	case ZoneDecline:
		return "decline"
	case ZoneAccept:
		return "accept"
	default:
		return "neutral"
	}
}

// Outcome is the decision emitted when a gesture ends fully displaced.
type Outcome int

const (
	OutcomeAccept Outcome = iota + 1
	OutcomeDecline
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccept:
		return "accept"
	case OutcomeDecline:
		return "decline"
	default:
		return ""
	}
}
