package console

import "sync"

// Alerts is the single shared error surface. Panels and the coordinator
// write into it; the last message written wins.
type Alerts struct {
	mu      sync.Mutex
	current string
}

func NewAlerts() *Alerts {
	return &Alerts{}
}

// Error replaces the current alert message.
func (a *Alerts) Error(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = msg
}

// Clear removes the current alert message.
func (a *Alerts) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = ""
}

// Current returns the alert message on display, or "" when none.
func (a *Alerts) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}
