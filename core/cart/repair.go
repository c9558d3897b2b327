package cart

import (
	"bytes"

	"github.com/pkg/errors"
)

// Repair is the load-time consistency pass over persisted state. Each raw
// entry goes through lenient normalization; entries that cannot be
// salvaged are discarded rather than aborting the pass, and duplicates by
// id keep their first occurrence. The repaired sequence is written back
// only when it differs from what was stored. An unreadable store is the
// terminal case: the cart resets to empty, accepting data loss over
// persistent corruption.
//
// Returns true when persisted state was changed.
func (m *Manager) Repair() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		// last resort: reset and report
		if clearErr := m.save(nil); clearErr != nil && m.log != nil {
			m.log.Error("resetting corrupt cart", clearErr)
		}
		m.bus.Publish(Event{Kind: EventError, Err: errors.Wrap(err, "repairing cart")})
		m.bus.Publish(Event{Kind: EventCartUpdated})
		return true
	}

	repaired := make([]Item, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		it, ok := normalizeLenient(e)
		if !ok {
			continue // discard, keep going
		}
		if _, dup := seen[it.ID]; dup {
			continue // first occurrence wins
		}
		seen[it.ID] = struct{}{}
		repaired = append(repaired, it)
	}

	if bytes.Equal(canonicalJSON(entries), canonicalJSON(asCandidates(repaired))) {
		return false
	}

	if err := m.save(asCandidates(repaired)); err != nil {
		m.bus.Publish(Event{Kind: EventError, Err: errors.Wrap(err, "repairing cart")})
		return false
	}
	m.publish(Event{Kind: EventCartUpdated}, asCandidates(repaired))
	return true
}

func asCandidates(items []Item) []Candidate {
	cs := make([]Candidate, 0, len(items))
	for _, it := range items {
		cs = append(cs, it.candidate())
	}
	return cs
}
