package order

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjyf27/redpro/core"
)

func TestMain(m *testing.M) {
	core.InitValidators()
	os.Exit(m.Run())
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		code    string
		wantPct int
		wantOK  bool
	}{
		{code: "REDPRO10", wantPct: 10, wantOK: true},
		{code: "redpro10", wantPct: 10, wantOK: true},
		{code: "  Estudiante ", wantPct: 15, wantOK: true},
		{code: "PRIMERA", wantPct: 20, wantOK: true},
		{code: "PROMO2025", wantPct: 25, wantOK: true},
		{code: "GRATIS", wantOK: false},
		{code: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			pct, ok := DiscountPercent(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPct, pct)
		})
	}
}

func TestOrder_Totals(t *testing.T) {
	tests := []struct {
		name         string
		items        []Line
		discount     int
		wantSubtotal float64
		wantDiscount float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name:         "single line no discount",
			items:        []Line{{CourseID: "7", Name: "CCNA", UnitPrice: 299.99, Quantity: 1}},
			wantSubtotal: 299.99,
			wantTax:      54.00, // IGV 18% of 299.99
			wantTotal:    353.99,
		},
		{
			name: "multiple lines with quantity",
			items: []Line{
				{CourseID: "7", UnitPrice: 299.99, Quantity: 2},
				{CourseID: "8", UnitPrice: 199.99, Quantity: 1},
			},
			wantSubtotal: 799.97,
			wantTax:      143.99,
			wantTotal:    943.96,
		},
		{
			name:         "discount applies before tax",
			items:        []Line{{CourseID: "7", UnitPrice: 100, Quantity: 1}},
			discount:     20,
			wantSubtotal: 100,
			wantDiscount: 20,
			wantTax:      14.40, // 18% of the discounted 80
			wantTotal:    94.40,
		},
		{
			name:      "empty order totals zero",
			items:     nil,
			wantTotal: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ord := Order{Items: tt.items, DiscountPercent: tt.discount}
			ord.Totals()
			assert.Equal(t, tt.wantSubtotal, ord.Subtotal)
			assert.Equal(t, tt.wantDiscount, ord.DiscountAmount)
			assert.Equal(t, tt.wantTax, ord.Tax)
			assert.Equal(t, tt.wantTotal, ord.Total)
		})
	}
}

func TestNewOrder_Validate(t *testing.T) {
	valid := func() NewOrder {
		return NewOrder{
			Customer: Customer{
				Name:  "María Quispe",
				Email: "MARIA@test.pe ",
				Phone: "987654321",
				DNI:   "45678912",
			},
			Items:         []Line{{CourseID: "7", Name: "CCNA", UnitPrice: 299.99, Quantity: 1}},
			PaymentMethod: "Yape ",
		}
	}

	t.Run("valid order cleans fields", func(t *testing.T) {
		no := valid()
		assert.NoError(t, no.Validate())
		assert.Equal(t, "maria@test.pe", no.Customer.Email)
		assert.Equal(t, PayYape, no.PaymentMethod)
	})

	t.Run("bad dni", func(t *testing.T) {
		no := valid()
		no.Customer.DNI = "123"
		assert.Error(t, no.Validate())
	})

	t.Run("no items", func(t *testing.T) {
		no := valid()
		no.Items = nil
		assert.Error(t, no.Validate())
	})

	t.Run("unknown payment method", func(t *testing.T) {
		no := valid()
		no.PaymentMethod = "bitcoin"
		assert.Error(t, no.Validate())
	})

	t.Run("discount out of range", func(t *testing.T) {
		no := valid()
		no.DiscountPercent = 120
		assert.Error(t, no.Validate())
	})
}
