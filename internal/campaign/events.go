package campaign

import (
	"sync"
	"time"
)

// EventType identifies a campaign progress event.
type EventType string

const (
	EventCandidateFound   EventType = "candidate_found"
	EventAttemptStarted   EventType = "attempt_started"
	EventAttemptResult    EventType = "attempt_result"
	EventCapReached       EventType = "cap_reached"
	EventListingExhausted EventType = "listing_exhausted"
)

// Event is one entry in the campaign's progress stream.
type Event struct {
	Type       EventType
	ProfileURL string
	Degree     string
	Outcome    string
	Reason     string
	Successes  int
	Processed  int
	At         time.Time
}

// Broker fans campaign events out to subscribers. Publish never blocks; a
// slow subscriber drops events rather than stalling the pipeline.
type Broker struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewBroker returns an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber channel.
func (b *Broker) Subscribe() chan Event {
	ch := make(chan Event, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (b *Broker) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

// Publish delivers the event to every subscriber that has buffer room.
// A nil broker is a no-op, so components can run without observers.
func (b *Broker) Publish(ev Event) {
	if b == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	b.mu.Unlock()
}
