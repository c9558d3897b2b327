package storefront

import (
	"sync"

	"github.com/jjyf27/redpro/core/cart"
)

// SidebarView is one rendered frame of the cart sidebar: line items in
// insertion order, the recomputed total and the badge count.
type SidebarView struct {
	Lines []cart.Item
	Total float64
	Badge int
}

// SidebarSurface renders the sliding cart summary and its badge counter.
// It re-renders from a fresh read on every cart notification, including
// coarse cross-process updates; event payloads are never trusted.
type SidebarSurface struct {
	surface

	mu   sync.RWMutex
	view SidebarView
}

func NewSidebarSurface(mgr *cart.Manager, notify Notifier) *SidebarSurface {
	s := &SidebarSurface{surface: surface{cart: mgr, notify: notify}}
	mgr.Bus().Subscribe(cart.EventCartUpdated, func(cart.Event) { s.refresh() })
	mgr.Bus().Subscribe(cart.EventError, s.onError)
	s.refresh()
	return s
}

// Remove deletes a line item; removing one that is already gone (say, a
// sibling process beat us to it) still succeeds quietly.
func (s *SidebarSurface) Remove(id string) {
	if err := s.cart.Remove(id); err != nil {
		s.notify.Notify(LevelError, "No se pudo eliminar el curso del carrito")
	}
}

// View returns the latest rendered frame.
func (s *SidebarSurface) View() SidebarView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view := s.view
	view.Lines = append([]cart.Item(nil), s.view.Lines...)
	return view
}

func (s *SidebarSurface) refresh() {
	view := SidebarView{
		Lines: s.cart.Items(),
		Total: s.cart.Total(),
		Badge: s.cart.Count(),
	}
	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
}

func (s *SidebarSurface) onError(evt cart.Event) {
	if evt.Err != nil {
		s.notify.Notify(LevelError, "Hubo un problema con el carrito")
	}
}
