package slider

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdQueue collects commands produced while the controller runs so Update can
// hand them back to the program.
type cmdQueue struct {
	cmds []tea.Cmd
}

func (q *cmdQueue) push(cmd tea.Cmd) {
	if cmd != nil {
		q.cmds = append(q.cmds, cmd)
	}
}

func (q *cmdQueue) drain() tea.Cmd {
	if len(q.cmds) == 0 {
		return nil
	}
	cmds := q.cmds
	q.cmds = nil
	return tea.Batch(cmds...)
}

// teaScheduler implements gesture.Scheduler on top of tea.Tick, so settle
// callbacks run inside Update rather than on a timer goroutine.
type teaScheduler struct {
	owner   string
	queue   *cmdQueue
	next    uint64
	pending map[uint64]func()
}

func newTeaScheduler(owner string, queue *cmdQueue) *teaScheduler {
	return &teaScheduler{owner: owner, queue: queue, pending: map[uint64]func(){}}
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) func() {
	s.next++
	id := s.next
	s.pending[id] = fn
	owner := s.owner
	s.queue.push(tea.Tick(d, func(time.Time) tea.Msg {
		return settleMsg{owner: owner, id: id}
	}))
	return func() { delete(s.pending, id) }
}

// fire runs the callback registered under id. Cancelled or unknown ids are
// ignored.
func (s *teaScheduler) fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

func (s *teaScheduler) reset() {
	clear(s.pending)
}
