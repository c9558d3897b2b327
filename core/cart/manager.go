package cart

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/jjyf27/redpro/core"
)

// Manager owns all mutations of the persisted cart. Every operation is a
// full read-modify-write against the Store followed by event publication;
// no in-memory copy of the cart survives between calls. Calls within one
// process are serialized by a mutex, but nothing serializes writers in
// sibling processes sharing the same store: two of them can pass the
// existence check before either writes, leaving a duplicate row that the
// repair pass removes on next load.
type Manager struct {
	mu    sync.Mutex
	store Store
	bus   *Bus
	log   core.Logger
}

func NewManager(store Store, bus *Bus, logger core.Logger) *Manager {
	return &Manager{store: store, bus: bus, log: logger}
}

// Bus exposes the notification channel so surfaces can subscribe.
func (m *Manager) Bus() *Bus { return m.bus }

// Add inserts a normalized candidate, or increments the quantity of the
// existing entry with the same id, leaving its price and name untouched.
// The existence check runs before the insert decision on purpose: every
// call site appends-or-increments against current persisted state rather
// than trusting its own snapshot.
func (m *Manager) Add(c Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, err := Normalize(c)
	if err != nil {
		return m.fail("adding item", err)
	}

	entries, err := m.load()
	if err != nil {
		return m.fail("adding item", err)
	}

	evt := Event{Kind: EventItemAdded}
	if i := indexOf(entries, it.ID); i >= 0 {
		qty, ok := coerceInt(entries[i].Quantity)
		if !ok || qty < 1 {
			qty = 1
		}
		entries[i].Quantity = qty + 1
		updated := lenientView(entries[i])
		evt = Event{Kind: EventItemUpdated, Item: &updated}
	} else {
		entries = append(entries, it.candidate())
		evt.Item = &it
	}

	if err := m.save(entries); err != nil {
		return m.fail("adding item", err)
	}
	m.publish(evt, entries)
	return nil
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op reporting success.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return m.fail("removing item", err)
	}

	i := indexOf(entries, id)
	if i < 0 {
		return nil
	}
	removed := lenientView(entries[i])
	entries = append(entries[:i], entries[i+1:]...)

	if err := m.save(entries); err != nil {
		return m.fail("removing item", err)
	}
	m.publish(Event{Kind: EventItemRemoved, Item: &removed}, entries)
	return nil
}

// SetQuantity overwrites the quantity of an existing entry.
func (m *Manager) SetQuantity(id string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if qty < 1 {
		return m.fail("updating quantity", errors.Wrapf(ErrInvalidQuantity, "quantity %d", qty))
	}

	entries, err := m.load()
	if err != nil {
		return m.fail("updating quantity", err)
	}

	i := indexOf(entries, id)
	if i < 0 {
		return m.fail("updating quantity", errors.Wrapf(ErrNotFound, "id %q", id))
	}
	entries[i].Quantity = qty

	if err := m.save(entries); err != nil {
		return m.fail("updating quantity", err)
	}
	updated := lenientView(entries[i])
	m.publish(Event{Kind: EventItemUpdated, Item: &updated}, entries)
	return nil
}

// Clear replaces the cart with an empty sequence.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.save(nil); err != nil {
		return m.fail("clearing cart", err)
	}
	m.publish(Event{Kind: EventCartCleared}, nil)
	return nil
}

// Items returns a fresh, transient snapshot of the cart in insertion
// order. Corrupt fields are coerced to displayable defaults without
// touching persisted state.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items()
}

func (m *Manager) items() []Item {
	entries, err := m.load()
	if err != nil {
		m.fail("reading cart", err) //nolint:errcheck
		return nil
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, lenientView(e))
	}
	return items
}

// Total is the recomputed cart value Σ(unit price × quantity). Any
// non-numeric field counts as zero for this computation only, so the
// result is never NaN, and a corrupt unrepaired cart totals 0.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return 0
	}
	var total float64
	for _, e := range entries {
		price, ok := coerceFloat(e.UnitPrice)
		if !ok || price < 0 {
			price = 0
		}
		qty, ok := coerceInt(e.Quantity)
		if !ok || qty < 1 {
			qty = 1
		}
		total += price * float64(qty)
	}
	return total
}

// Count is the total number of units in the cart, Σ(quantity).
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return 0
	}
	var count int
	for _, e := range entries {
		qty, ok := coerceInt(e.Quantity)
		if !ok || qty < 1 {
			qty = 1
		}
		count += qty
	}
	return count
}

// NotifyExternalChange publishes a coarse update after the underlying
// store changed outside this process (another tab/process wrote it).
// Subscribers re-read full state; the snapshot is advisory only.
func (m *Manager) NotifyExternalChange() {
	m.mu.Lock()
	items := m.items()
	m.mu.Unlock()
	m.bus.Publish(Event{Kind: EventCartUpdated, Items: items})
}

// load reads and decodes the persisted payload. A missing payload is an
// empty cart; an undecodable one is a storage failure.
func (m *Manager) load() ([]Candidate, error) {
	payload, err := m.store.Read()
	if err != nil {
		return nil, errors.Wrap(ErrStorage, err.Error())
	}
	if len(payload) == 0 {
		return nil, nil
	}
	var entries []Candidate
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, errors.Wrap(ErrStorage, err.Error())
	}
	return entries, nil
}

func (m *Manager) save(entries []Candidate) error {
	if entries == nil {
		entries = []Candidate{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(ErrStorage, err.Error())
	}
	if err := m.store.Write(payload); err != nil {
		return errors.Wrap(ErrStorage, err.Error())
	}
	return nil
}

// publish emits the operation-specific event followed by the generic
// EventCartUpdated so coarse-grained subscribers can simply re-read.
func (m *Manager) publish(evt Event, entries []Candidate) {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, lenientView(e))
	}
	evt.Items = items
	m.bus.Publish(evt)
	if evt.Kind != EventCartUpdated {
		m.bus.Publish(Event{Kind: EventCartUpdated, Items: items})
	}
}

// fail converts an internal failure into an Error event plus a returned
// error; nothing panics across the public boundary.
func (m *Manager) fail(op string, err error) error {
	wrapped := errors.Wrap(err, op)
	if m.log != nil {
		m.log.Error(op, wrapped)
	}
	m.bus.Publish(Event{Kind: EventError, Err: wrapped})
	return wrapped
}

// indexOf locates the entry whose coerced id matches, -1 when absent.
func indexOf(entries []Candidate, id string) int {
	for i, e := range entries {
		if eid, ok := coerceString(e.ID); ok && eid == id {
			return i
		}
	}
	return -1
}

// lenientView maps a raw entry to a displayable Item without validating
// it: corrupt fields get defaults, identity may be empty. Used for reads
// only; the repair pass is what actually fixes persisted state.
func lenientView(c Candidate) Item {
	id, _ := coerceString(c.ID)
	name, _ := coerceString(c.Name)
	price, ok := coerceFloat(c.UnitPrice)
	if !ok || price < 0 {
		price = 0
	}
	qty, ok := coerceInt(c.Quantity)
	if !ok || qty < 1 {
		qty = 1
	}
	it := Item{ID: id, Name: name, UnitPrice: price, Quantity: qty}
	if img, ok := coerceString(c.ImageRef); ok {
		it.ImageRef = img
	}
	return it
}

// canonicalJSON re-encodes entries so that content comparison ignores
// payload formatting differences.
func canonicalJSON(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
