package slider

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var errArrowsClosed = errors.New("arrows closed")

const arrowFrames = 4

// Arrows is the looping chevron decoration on both sides of the orb. It
// satisfies gesture.Animation.
type Arrows struct {
	owner    string
	interval time.Duration
	queue    *cmdQueue

	frame   int
	playing bool
	closed  bool
	gen     uint64
}

func newArrows(owner string, interval time.Duration, queue *cmdQueue) *Arrows {
	return &Arrows{owner: owner, interval: interval, queue: queue}
}

func (a *Arrows) Play() error {
	if a.closed {
		return errArrowsClosed
	}
	if a.playing {
		return nil
	}
	a.playing = true
	a.gen++
	a.queue.push(a.tick())
	return nil
}

func (a *Arrows) Pause() error {
	if a.closed {
		return errArrowsClosed
	}
	a.playing = false
	a.gen++
	return nil
}

func (a *Arrows) Playing() bool { return a.playing }

func (a *Arrows) close() {
	a.closed = true
	a.playing = false
	a.gen++
}

func (a *Arrows) tick() tea.Cmd {
	if a.interval <= 0 {
		return nil
	}
	owner, gen := a.owner, a.gen
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return arrowTickMsg{owner: owner, gen: gen}
	})
}

// advance moves to the next frame for a tick from the current play run.
// Ticks from an earlier run are dropped.
func (a *Arrows) advance(msg arrowTickMsg) tea.Cmd {
	if !a.playing || msg.gen != a.gen {
		return nil
	}
	a.frame = (a.frame + 1) % arrowFrames
	return a.tick()
}

// Left renders the chevrons pointing at Decline; the lit one walks outward.
func (a *Arrows) Left() string {
	return chevrons("‹", arrowFrames-1-a.frame)
}

func (a *Arrows) Right() string {
	return chevrons("›", a.frame)
}

func chevrons(glyph string, lit int) string {
	var b strings.Builder
	for i := 0; i < arrowFrames-1; i++ {
		if i == lit {
			b.WriteString(arrowLitStyle.Render(glyph))
		} else {
			b.WriteString(arrowDimStyle.Render(glyph))
		}
	}
	return b.String()
}
