package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jjyf27/redpro/core"
)

// Payment methods accepted at checkout.
const (
	PayCard     = "tarjeta"
	PayYape     = "yape"
	PayTransfer = "transferencia"
)

// Order statuses.
const (
	StatusPending = "Pendiente"
	StatusPaid    = "Pagado"
)

// taxRate is the Peruvian IGV applied after discounts.
var taxRate = decimal.NewFromFloat(0.18)

// discountCodes maps promotional codes to their percentage off.
var discountCodes = map[string]int{
	"REDPRO10":   10,
	"ESTUDIANTE": 15,
	"PRIMERA":    20,
	"PROMO2025":  25,
}

// DiscountPercent resolves a promotional code, reporting whether it exists.
func DiscountPercent(code string) (int, bool) {
	pct, ok := discountCodes[strings.ToUpper(core.CleanString(code))]
	return pct, ok
}

type (
	Customer struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone" validate:"required"`
		DNI   string `json:"dni" validate:"required,dni"`
	}

	// Line is one purchased course inside an order.
	Line struct {
		CourseID  string  `json:"id"`
		Name      string  `json:"name"`
		UnitPrice float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	}

	// NewOrder is what checkout submits.
	NewOrder struct {
		Customer        Customer `json:"customer"`
		Items           []Line   `json:"items" validate:"required,min=1,dive"`
		PaymentMethod   string   `json:"payment_method" validate:"required,oneof=tarjeta yape transferencia"`
		DiscountPercent int      `json:"discount_percent" validate:"gte=0,lte=100"`
	}

	Order struct {
		ID              int       `json:"id"`
		Number          string    `json:"number"`
		Customer        Customer  `json:"customer"`
		Items           []Line    `json:"items"`
		Subtotal        float64   `json:"subtotal"`
		DiscountPercent int       `json:"discount_percent"`
		DiscountAmount  float64   `json:"discount_amount"`
		Tax             float64   `json:"tax"`
		Total           float64   `json:"total"`
		PaymentMethod   string    `json:"payment_method"`
		Status          string    `json:"status"`
		PlacedAt        time.Time `json:"placed_at"` // UTC
	}
)

func (no *NewOrder) Validate() error {
	no.Customer.Name = core.CleanString(no.Customer.Name)
	no.Customer.Email = core.CleanString(no.Customer.Email, true /* lower */)
	no.Customer.Phone = core.CleanString(no.Customer.Phone)
	no.Customer.DNI = core.CleanString(no.Customer.DNI)
	no.PaymentMethod = core.CleanString(no.PaymentMethod, true /* lower */)
	if err := core.Validate.Struct(no.Customer); err != nil {
		return err
	}
	return core.Validate.Struct(no)
}

// Totals recomputes all money fields from the line items using decimal
// arithmetic so repeated float sums cannot drift: subtotal, discount,
// IGV on the discounted base, and the final total, all rounded to cents.
func (o *Order) Totals() {
	subtotal := decimal.Zero
	for _, line := range o.Items {
		price := decimal.NewFromFloat(line.UnitPrice)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	discount := subtotal.Mul(decimal.NewFromInt(int64(o.DiscountPercent))).Div(decimal.NewFromInt(100))
	base := subtotal.Sub(discount)
	tax := base.Mul(taxRate)

	o.Subtotal, _ = subtotal.Round(2).Float64()
	o.DiscountAmount, _ = discount.Round(2).Float64()
	o.Tax, _ = tax.Round(2).Float64()
	o.Total, _ = base.Add(tax).Round(2).Float64()
}
