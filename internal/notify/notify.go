// Package notify manages the transient notification queue: each pushed
// message is displayed for a fixed duration, visually recedes for a short
// fade period, then is removed. Identical messages are never deduplicated.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

type Notification struct {
	ID        uint64
	Message   string
	Severity  Severity
	CreatedAt time.Time
	// Expiring marks the fade period: still displayed, about to go.
	Expiring bool
}

type Notifier struct {
	mu       sync.Mutex
	ttl      time.Duration
	fade     time.Duration
	seq      uint64
	active   []Notification
	timers   []*time.Timer
	onRaise  func(Notification)
	onChange func()
	closed   bool
}

// New creates a notifier whose notifications display for ttl and then fade
// for fade before removal.
func New(ttl, fade time.Duration) *Notifier {
	return &Notifier{ttl: ttl, fade: fade}
}

// OnRaise registers the display layer's callback for newly pushed
// notifications. Invoked outside the notifier's lock.
func (n *Notifier) OnRaise(fn func(Notification)) {
	n.mu.Lock()
	n.onRaise = fn
	n.mu.Unlock()
}

// OnChange registers a callback invoked whenever the active list changes,
// including expiry transitions.
func (n *Notifier) OnChange(fn func()) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Push enqueues a notification and schedules its expiry. Each call gets an
// independent lifecycle, so repeated identical messages stack up.
func (n *Notifier) Push(message string, severity Severity) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}

	n.seq++
	notification := Notification{
		ID:        n.seq,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	n.active = append(n.active, notification)

	id := notification.ID
	fadeTimer := time.AfterFunc(n.ttl, func() { n.beginFade(id) })
	removeTimer := time.AfterFunc(n.ttl+n.fade, func() { n.remove(id) })
	n.timers = append(n.timers, fadeTimer, removeTimer)

	raise := n.onRaise
	change := n.onChange
	n.mu.Unlock()

	if raise != nil {
		raise(notification)
	}
	if change != nil {
		change()
	}
}

func (n *Notifier) beginFade(id uint64) {
	n.mu.Lock()
	for i := range n.active {
		if n.active[i].ID == id {
			n.active[i].Expiring = true
		}
	}
	change := n.onChange
	n.mu.Unlock()

	if change != nil {
		change()
	}
}

func (n *Notifier) remove(id uint64) {
	n.mu.Lock()
	kept := n.active[:0]
	for _, a := range n.active {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	n.active = kept
	change := n.onChange
	n.mu.Unlock()

	if change != nil {
		change()
	}
}

// Active returns a copy of the currently displayed notifications, including
// ones in their fade period.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.active))
	copy(out, n.active)
	return out
}

// Close stops all pending expiry timers. Further pushes are dropped.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	for _, t := range n.timers {
		t.Stop()
	}
	n.timers = nil
}
