// Package notify is the transient notification queue: short-lived messages
// any flow can raise without knowing who renders them. The web client drew
// these as toasts; the CLI prints them to stderr.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Variant tags a notification for rendering.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// DefaultTimeout is how long a notification stays visible unless dismissed.
const DefaultTimeout = 4500 * time.Millisecond

// Notification is one queued message.
type Notification struct {
	ID      string
	Message string
	Variant Variant
	ShownAt time.Time
}

// Listener receives show and dismiss events.
type Listener interface {
	NotificationShown(n Notification)
	NotificationDismissed(id string)
}

// Notifier queues notifications with timed auto-dismiss. Multiple
// notifications may be visible at once; dismissing one leaves the others
// untouched. Close cancels every pending timer.
type Notifier struct {
	mu       sync.Mutex
	timeout  time.Duration
	active   map[string]Notification
	timers   map[string]*time.Timer
	listener Listener
	closed   bool
}

// New returns a notifier with the given auto-dismiss timeout; non-positive
// falls back to DefaultTimeout.
func New(timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Notifier{
		timeout: timeout,
		active:  make(map[string]Notification),
		timers:  make(map[string]*time.Timer),
	}
}

// SetListener registers the single renderer. Passing nil unsubscribes.
func (n *Notifier) SetListener(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listener = l
}

// Show enqueues a message and returns its id. After the timeout the
// notification dismisses itself unless Dismiss was called first.
func (n *Notifier) Show(message string, variant Variant) string {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ""
	}
	id := uuid.NewString()
	item := Notification{ID: id, Message: message, Variant: variant, ShownAt: time.Now()}
	n.active[id] = item
	n.timers[id] = time.AfterFunc(n.timeout, func() { n.Dismiss(id) })
	l := n.listener
	n.mu.Unlock()

	if l != nil {
		l.NotificationShown(item)
	}
	return id
}

// Dismiss removes one notification early. Unknown ids are ignored.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	if _, ok := n.active[id]; !ok {
		n.mu.Unlock()
		return
	}
	delete(n.active, id)
	if t := n.timers[id]; t != nil {
		t.Stop()
	}
	delete(n.timers, id)
	l := n.listener
	n.mu.Unlock()

	if l != nil {
		l.NotificationDismissed(id)
	}
}

// Active returns the currently visible notifications.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, 0, len(n.active))
	for _, item := range n.active {
		out = append(out, item)
	}
	return out
}

// Close stops every pending timer and drops queued notifications. The
// notifier accepts no new messages afterwards.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.active = make(map[string]Notification)
}
