package host

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// recordingHandlers logs every callback in order and can be told to
// panic on message events.
type recordingHandlers struct {
	calls          []string
	panicOnMessage bool
}

func (h *recordingHandlers) OnRefreshTick() {
	h.calls = append(h.calls, "tick")
}

func (h *recordingHandlers) OnBootProgress(elapsed time.Duration, fraction float64) {
	h.calls = append(h.calls, fmt.Sprintf("progress %.2f", fraction))
}

func (h *recordingHandlers) OnDisplayNormal() {
	h.calls = append(h.calls, "normal")
}

func (h *recordingHandlers) OnDisplayPassword(prompt string, bullets int) {
	h.calls = append(h.calls, fmt.Sprintf("password %s %d", prompt, bullets))
}

func (h *recordingHandlers) OnMessage(text string) {
	if h.panicOnMessage {
		panic("message handler failure")
	}
	h.calls = append(h.calls, "message "+text)
}

func (h *recordingHandlers) OnQuit() {
	h.calls = append(h.calls, "quit")
}

// TestDispatchFIFO delivers queued events in posting order, one
// handler at a time.
func TestDispatchFIFO(t *testing.T) {
	h := &recordingHandlers{}
	l := NewLoop(h)

	l.Post(Event{Type: EventRefreshTick})
	l.Post(Event{Type: EventBootProgress, Fraction: 0.25})
	l.Post(Event{Type: EventDisplayPassword, Prompt: "Password:", Bullets: 2})
	l.Post(Event{Type: EventDisplayNormal})
	l.Post(Event{Type: EventMessage, Text: "hello"})
	l.Post(Event{Type: EventQuit})

	l.Dispatch()

	want := []string{"tick", "progress 0.25", "password Password: 2", "normal", "message hello", "quit"}
	if len(h.calls) != len(want) {
		t.Fatalf("Got %d calls, want %d: %v", len(h.calls), len(want), h.calls)
	}
	for i := range want {
		if h.calls[i] != want[i] {
			t.Errorf("Call %d = %q, want %q", i, h.calls[i], want[i])
		}
	}

	// A second dispatch with an empty queue does nothing.
	l.Dispatch()
	if len(h.calls) != len(want) {
		t.Errorf("Empty dispatch delivered events: %v", h.calls[len(want):])
	}
}

// TestPanicIsolation makes sure a panicking handler does not block the
// events queued behind it.
func TestPanicIsolation(t *testing.T) {
	h := &recordingHandlers{panicOnMessage: true}
	l := NewLoop(h)

	l.Post(Event{Type: EventRefreshTick})
	l.Post(Event{Type: EventMessage, Text: "boom"})
	l.Post(Event{Type: EventQuit})

	l.Dispatch()

	want := []string{"tick", "quit"}
	if len(h.calls) != 2 || h.calls[0] != want[0] || h.calls[1] != want[1] {
		t.Errorf("Got calls %v, want %v", h.calls, want)
	}
}

// TestConcurrentPost posts from many goroutines and expects every
// event to arrive exactly once.
func TestConcurrentPost(t *testing.T) {
	h := &recordingHandlers{}
	l := NewLoop(h)

	const goroutines = 10
	const perGoroutine = 25

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				l.Post(Event{Type: EventRefreshTick})
			}
		}()
	}
	wg.Wait()

	l.Dispatch()

	if len(h.calls) != goroutines*perGoroutine {
		t.Errorf("Got %d events, want %d", len(h.calls), goroutines*perGoroutine)
	}
}
