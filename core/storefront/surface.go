package storefront

import (
	"fmt"

	"github.com/jjyf27/redpro/core/cart"
	"github.com/jjyf27/redpro/core/course"
)

// surface carries what every UI entry point shares: the one cart manager
// and a notification sink. Surfaces never keep an authoritative cart
// copy; they read fresh state from the manager each time.
type surface struct {
	cart   *cart.Manager
	notify Notifier
}

// addCourse is the shared add path. The in-cart pre-check is advisory
// UX (it spares the user a silent quantity bump when several surfaces
// are mounted at once); the manager's own dedup stays authoritative.
func (s surface) addCourse(c course.Course) bool {
	if s.inCart(c.CartID()) {
		s.notify.Notify(LevelInfo, fmt.Sprintf("%q ya está en el carrito", c.Title))
		return false
	}

	err := s.cart.Add(cart.Candidate{
		ID:        c.ID, // numeric on purpose: normalization owns coercion
		Name:      c.Title,
		UnitPrice: c.Price,
		ImageRef:  c.ImageRef,
	})
	if err != nil {
		s.notify.Notify(LevelError, fmt.Sprintf("No se pudo agregar %q al carrito", c.Title))
		return false
	}
	s.notify.Notify(LevelSuccess, fmt.Sprintf("%q añadido al carrito", c.Title))
	return true
}

func (s surface) inCart(id string) bool {
	for _, it := range s.cart.Items() {
		if it.ID == id {
			return true
		}
	}
	return false
}
