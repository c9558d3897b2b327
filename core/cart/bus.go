package cart

import "sync"

type EventKind string

const (
	// EventCartUpdated is the coarse-grained kind published after every
	// successful write; subscribers should re-read full state rather than
	// interpret payloads, which may already be stale when handled.
	EventCartUpdated EventKind = "cart.updated"

	EventItemAdded   EventKind = "cart.item.added"
	EventItemRemoved EventKind = "cart.item.removed"
	EventItemUpdated EventKind = "cart.item.updated"
	EventCartCleared EventKind = "cart.cleared"
	EventError       EventKind = "cart.error"
)

type Event struct {
	Kind EventKind

	// Item is the affected entry, set on item-level kinds.
	Item *Item

	// Items is an advisory snapshot of the cart at publish time.
	Items []Item

	// Err is set on EventError only.
	Err error
}

type Handler func(Event)

// Bus is an in-process publish/subscribe channel for cart change
// notifications. Delivery is synchronous and in subscription order;
// handlers must not mutate the cart from within their own write's
// notification, they only re-read and re-render.
type Bus struct {
	mu   sync.RWMutex
	subs map[EventKind][]Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[EventKind][]Handler)}
}

func (b *Bus) Subscribe(kind EventKind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[kind] = append(b.subs[kind], h)
}

func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subs[evt.Kind]))
	copy(handlers, b.subs[evt.Kind])
	b.mu.RUnlock()

	for _, h := range handlers {
		h(evt)
	}
}
