package storefront

import (
	"github.com/jjyf27/redpro/core/cart"
	"github.com/jjyf27/redpro/core/course"
)

// GridSurface backs the course grid's per-card "add to cart" button.
type GridSurface struct {
	surface
}

func NewGridSurface(mgr *cart.Manager, notify Notifier) *GridSurface {
	return &GridSurface{surface{cart: mgr, notify: notify}}
}

// Add puts the rendered card's course into the cart. Reports whether the
// cart changed.
func (s *GridSurface) Add(c course.Course) bool {
	return s.addCourse(c)
}
