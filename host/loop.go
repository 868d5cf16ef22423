package host

import (
	"log"
	"sync"
	"time"
)

// EventType identifies which handler a host event targets.
type EventType int

const (
	EventRefreshTick EventType = iota
	EventBootProgress
	EventDisplayNormal
	EventDisplayPassword
	EventMessage
	EventQuit
)

// Event is one host notification. Only the fields for its type are
// meaningful.
type Event struct {
	Type EventType

	// EventBootProgress
	Elapsed  time.Duration
	Fraction float64

	// EventDisplayPassword
	Prompt  string
	Bullets int

	// EventMessage
	Text string
}

// Handlers is the callback surface the splash registers with the host.
type Handlers interface {
	OnRefreshTick()
	OnBootProgress(elapsed time.Duration, fraction float64)
	OnDisplayNormal()
	OnDisplayPassword(prompt string, bullets int)
	OnMessage(text string)
	OnQuit()
}

// Loop delivers host events to the handlers one at a time. Post is
// safe from any goroutine; Dispatch must be called from a single
// driving thread, which preserves the single-active-callback model the
// controllers rely on. A panicking handler is logged and dropped so it
// cannot block later events.
type Loop struct {
	mu    sync.Mutex
	queue []Event

	handlers Handlers
}

func NewLoop(handlers Handlers) *Loop {
	return &Loop{handlers: handlers}
}

// Post enqueues an event for the next Dispatch.
func (l *Loop) Post(e Event) {
	l.mu.Lock()
	l.queue = append(l.queue, e)
	l.mu.Unlock()
}

// Dispatch drains the queue in FIFO order, running each handler to
// completion before the next.
func (l *Loop) Dispatch() {
	l.mu.Lock()
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, e := range pending {
		l.dispatchOne(e)
	}
}

func (l *Loop) dispatchOne(e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: splash handler panicked on event %d: %v", e.Type, r)
		}
	}()

	switch e.Type {
	case EventRefreshTick:
		l.handlers.OnRefreshTick()
	case EventBootProgress:
		l.handlers.OnBootProgress(e.Elapsed, e.Fraction)
	case EventDisplayNormal:
		l.handlers.OnDisplayNormal()
	case EventDisplayPassword:
		l.handlers.OnDisplayPassword(e.Prompt, e.Bullets)
	case EventMessage:
		l.handlers.OnMessage(e.Text)
	case EventQuit:
		l.handlers.OnQuit()
	default:
		log.Printf("Warning: unknown splash event type %d", e.Type)
	}
}
