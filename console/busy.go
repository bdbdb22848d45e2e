package console

import "sync"

// BusyIndicator tracks overlapping operations with a reference count so
// that the indicator stays on until the last operation finishes.
type BusyIndicator struct {
	mu    sync.Mutex
	count int
}

func NewBusyIndicator() *BusyIndicator {
	return &BusyIndicator{}
}

func (b *BusyIndicator) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count++
}

func (b *BusyIndicator) Hide() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count > 0 {
		b.count--
	}
}

// Active reports whether at least one operation is still in flight.
func (b *BusyIndicator) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count > 0
}
