package storefront

import (
	"fmt"

	"github.com/jjyf27/redpro/core/cart"
	"github.com/jjyf27/redpro/core/order"
)

// CheckoutSurface backs the payment page: it snapshots the cart into an
// order draft, applies discount codes, submits, and on success clears
// the cart exactly once.
type CheckoutSurface struct {
	surface

	orders          *order.Service
	discountPercent int
}

func NewCheckoutSurface(mgr *cart.Manager, orders *order.Service, notify Notifier) *CheckoutSurface {
	return &CheckoutSurface{
		surface: surface{cart: mgr, notify: notify},
		orders:  orders,
	}
}

// ApplyDiscount validates a promotional code. An invalid code leaves any
// previously applied discount in place.
func (s *CheckoutSurface) ApplyDiscount(code string) bool {
	pct, ok := order.DiscountPercent(code)
	if !ok {
		s.notify.Notify(LevelError, "Código de descuento inválido")
		return false
	}
	s.discountPercent = pct
	s.notify.Notify(LevelSuccess, fmt.Sprintf("¡Código aplicado! %d%% de descuento", pct))
	return true
}

// Submit places the order built from a fresh cart read. The cart is
// cleared only after the order service reports success, and only once.
func (s *CheckoutSurface) Submit(customer order.Customer, paymentMethod string) (order.Order, error) {
	items := s.cart.Items()
	lines := make([]order.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, order.Line{
			CourseID:  it.ID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	ord, err := s.orders.Place(order.NewOrder{
		Customer:        customer,
		Items:           lines,
		PaymentMethod:   paymentMethod,
		DiscountPercent: s.discountPercent,
	})
	if err != nil {
		s.notify.Notify(LevelError, "Error al procesar el pago")
		return order.Order{}, err
	}

	if err := s.cart.Clear(); err != nil {
		// order went through; the stale cart is repair's problem now
		s.notify.Notify(LevelError, "La orden fue procesada pero el carrito no pudo vaciarse")
	}
	s.notify.Notify(LevelSuccess, fmt.Sprintf("Orden %s procesada exitosamente", ord.Number))
	return ord, nil
}
