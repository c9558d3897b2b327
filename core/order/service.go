package order

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jjyf27/redpro/core"
)

var ErrNotFound = errors.New("order not found")

type (
	Repository interface {
		CreateOrder(o Order) (Order, error)
		QueryAllOrders() ([]Order, error)
		GetOrderByNumber(number string) (Order, error)
	}

	Service struct {
		repo Repository
		mail core.EmailService
		conf *core.Config
		log  core.Logger
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config, logger core.Logger) *Service {
	return &Service{repo: repo, mail: mailSvc, conf: conf, log: logger}
}

// Place validates, prices and persists a new order, then sends the
// customer and admin confirmations best-effort. On success the caller
// owns clearing the cart, exactly once.
func (svc *Service) Place(no NewOrder) (Order, error) {
	if err := no.Validate(); err != nil {
		return Order{}, err
	}

	now := time.Now().UTC()
	ord := Order{
		Number:          newOrderNumber(now),
		Customer:        no.Customer,
		Items:           no.Items,
		DiscountPercent: no.DiscountPercent,
		PaymentMethod:   no.PaymentMethod,
		Status:          StatusPending,
		PlacedAt:        now,
	}
	ord.Totals()

	ord, err := svc.repo.CreateOrder(ord)
	if err != nil {
		return Order{}, err
	}

	// confirmation emails must not fail the order
	svc.mail.SendMessages(svc.customerConfirmation(ord), svc.adminNotification(ord))
	return ord, nil
}

func (svc *Service) QueryAll() ([]Order, error) {
	return svc.repo.QueryAllOrders()
}

func (svc *Service) GetByNumber(number string) (Order, error) {
	return svc.repo.GetOrderByNumber(core.CleanString(number))
}

// newOrderNumber keeps the storefront's historical "RP" + epoch-millis shape.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("RP%d", now.UnixNano()/int64(time.Millisecond))
}

func (svc *Service) customerConfirmation(ord Order) *core.EmailMessage {
	var lines strings.Builder
	for _, line := range ord.Items {
		fmt.Fprintf(&lines, "  - %s x%d  S/ %.2f\n", line.Name, line.Quantity, line.UnitPrice)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hola %s,\n\n", ord.Customer.Name)
	fmt.Fprintf(&body, "Hemos recibido tu orden #%s. Detalle de tu compra:\n\n", ord.Number)
	body.WriteString(lines.String())
	fmt.Fprintf(&body, "\nSubtotal: S/ %.2f\n", ord.Subtotal)
	if ord.DiscountPercent > 0 {
		fmt.Fprintf(&body, "Descuento (%d%%): -S/ %.2f\n", ord.DiscountPercent, ord.DiscountAmount)
	}
	fmt.Fprintf(&body, "IGV (18%%): S/ %.2f\n", ord.Tax)
	fmt.Fprintf(&body, "Total: S/ %.2f\n\n", ord.Total)
	fmt.Fprintf(&body, "Método de pago: %s\n", ord.PaymentMethod)
	body.WriteString("\n¡Ya puedes acceder a tus cursos!\n")

	return &core.EmailMessage{
		To:          []mail.Address{{Name: ord.Customer.Name, Address: ord.Customer.Email}},
		Subject:     fmt.Sprintf("Confirmación de compra #%s", ord.Number),
		TextContent: body.String(),
	}
}

func (svc *Service) adminNotification(ord Order) *core.EmailMessage {
	var body strings.Builder
	fmt.Fprintf(&body, "Nueva orden #%s\n\n", ord.Number)
	fmt.Fprintf(&body, "Cliente: %s <%s>\n", ord.Customer.Name, ord.Customer.Email)
	fmt.Fprintf(&body, "Teléfono: %s\nDNI: %s\n", ord.Customer.Phone, ord.Customer.DNI)
	fmt.Fprintf(&body, "Total: S/ %.2f (%s)\n\nItems:\n", ord.Total, ord.PaymentMethod)
	for _, line := range ord.Items {
		fmt.Fprintf(&body, "  - %s x%d  S/ %.2f\n", line.Name, line.Quantity, line.UnitPrice)
	}

	return &core.EmailMessage{
		To:          []mail.Address{svc.conf.AdminEmail},
		Subject:     fmt.Sprintf("Nueva orden de compra #%s", ord.Number),
		TextContent: body.String(),
	}
}
