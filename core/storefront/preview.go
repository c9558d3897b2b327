package storefront

import (
	"github.com/jjyf27/redpro/core/cart"
	"github.com/jjyf27/redpro/core/course"
)

// PreviewSurface backs the course preview modal, which can either add to
// the cart or jump straight to checkout.
type PreviewSurface struct {
	surface
}

func NewPreviewSurface(mgr *cart.Manager, notify Notifier) *PreviewSurface {
	return &PreviewSurface{surface{cart: mgr, notify: notify}}
}

// AddToCart reports whether the cart changed.
func (s *PreviewSurface) AddToCart(c course.Course) bool {
	return s.addCourse(c)
}

// BuyNow ensures the course is in the cart and reports whether checkout
// should proceed. A course already in the cart still proceeds.
func (s *PreviewSurface) BuyNow(c course.Course) bool {
	if s.inCart(c.CartID()) {
		return true
	}
	return s.addCourse(c)
}
