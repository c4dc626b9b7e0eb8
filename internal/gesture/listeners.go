package gesture

// Handlers receive pointer input while a drag is active.
type Handlers struct {
	Move    func(coordinate float64)
	Release func()
}

// Events is a source of pointer move/release input that can be subscribed to
// for the duration of a drag.
type Events interface {
	Subscribe(h Handlers) (unsubscribe func())
}

// Bus is an Events implementation fed by the host's input loop. It holds at
// most one subscription; move and release are dropped when nothing listens.
type Bus struct {
	handlers *Handlers
	gen      uint64
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(h Handlers) func() {
	b.gen++
	gen := b.gen
	b.handlers = &h
	return func() {
		if b.gen == gen {
			b.handlers = nil
		}
	}
}

// Active reports whether a subscription is live.
func (b *Bus) Active() bool {
	return b.handlers != nil
}

// DispatchMove forwards a pointer coordinate. It reports whether a listener
// received it.
func (b *Bus) DispatchMove(coordinate float64) bool {
	if b.handlers == nil || b.handlers.Move == nil {
		return false
	}
	b.handlers.Move(coordinate)
	return true
}

func (b *Bus) DispatchRelease() bool {
	if b.handlers == nil || b.handlers.Release == nil {
		return false
	}
	b.handlers.Release()
	return true
}
