package dashboard

import (
	"sync"

	"go.uber.org/atomic"
)

// Board holds the view currently on screen. Every refresh takes a ticket
// from a monotonically increasing sequence; a result is committed only if
// no newer refresh has begun since its ticket was issued.
type Board struct {
	seq atomic.Uint64

	mu     sync.RWMutex
	latest *View
}

func NewBoard() *Board {
	return &Board{}
}

// Begin issues the ticket for a new refresh
func (b *Board) Begin() uint64 {
	return b.seq.Inc()
}

// Commit stores v if ticket is still the newest one and reports whether it did
func (b *Board) Commit(ticket uint64, v View) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ticket != b.seq.Load() {
		return false
	}

	v.Sequence = ticket
	b.latest = &v
	return true
}

// Latest returns the last committed view
func (b *Board) Latest() (View, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.latest == nil {
		return View{}, false
	}
	return *b.latest, true
}

// Sequence is the newest ticket issued
func (b *Board) Sequence() uint64 {
	return b.seq.Load()
}
