package store

import (
	"sync"

	"github.com/google/uuid"
)

// Kind names the record kind an Event is about.
type Kind string

const (
	KindTrip     Kind = "trip"
	KindActivity Kind = "activity"
	KindNote     Kind = "note"
)

// Op names the mutation an Event reports.
type Op string

const (
	OpAdded   Op = "added"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Event describes one successful store mutation.
// TripID is the owning trip for activities and notes, and the trip itself
// for trip events.
type Event struct {
	Kind   Kind
	Op     Op
	ID     uuid.UUID
	TripID uuid.UUID
}

type subscription struct {
	id int
	fn func(Event)
}

// notifier fans events out to subscribers in subscription order.
type notifier struct {
	mu   sync.Mutex
	next int
	subs []subscription
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it. Calling the returned function more than once is harmless.
func (n *notifier) Subscribe(fn func(Event)) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// publish must be called without holding any collection lock, so
// subscribers may read the store.
func (n *notifier) publish(e Event) {
	n.mu.Lock()
	subs := append([]subscription(nil), n.subs...)
	n.mu.Unlock()
	for _, s := range subs {
		s.fn(e)
	}
}
