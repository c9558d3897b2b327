package order_test

import (
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjyf27/redpro/core"
	. "github.com/jjyf27/redpro/core/order"
	emailsvc "github.com/jjyf27/redpro/services/email"
	dummydb "github.com/jjyf27/redpro/storage/database/dummy"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	conf := &core.Config{
		AppName:    "RedPro",
		TestMode:   true,
		AdminEmail: mail.Address{Name: "RedPro", Address: "admin@redpro.pe"},
	}
	db, _ := dummydb.Open()
	return NewService(dummydb.NewOrderRepository(db), emailsvc.NewConsoleServiceMock(conf), conf, nil)
}

func validNewOrder() NewOrder {
	return NewOrder{
		Customer: Customer{
			Name:  "María Quispe",
			Email: "maria@test.pe",
			Phone: "987654321",
			DNI:   "45678912",
		},
		Items:         []Line{{CourseID: "7", Name: "CCNA 200-301", UnitPrice: 299.99, Quantity: 1}},
		PaymentMethod: PayCard,
	}
}

func TestService_Place(t *testing.T) {
	emailsvc.ClearSentMessages()
	svc := newTestService(t)

	ord, err := svc.Place(validNewOrder())
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	assert.True(t, strings.HasPrefix(ord.Number, "RP"))
	assert.Greater(t, ord.ID, 0)
	assert.Equal(t, StatusPending, ord.Status)
	assert.InDelta(t, 299.99, ord.Subtotal, 0.001)
	assert.InDelta(t, 353.99, ord.Total, 0.001)
	assert.False(t, ord.PlacedAt.IsZero())

	// customer confirmation + admin notification
	if assert.Len(t, emailsvc.SentMessages, 2) {
		assert.Equal(t, "maria@test.pe", emailsvc.SentMessages[0].To[0].Address)
		assert.Equal(t, "admin@redpro.pe", emailsvc.SentMessages[1].To[0].Address)
		assert.Contains(t, emailsvc.SentMessages[0].TextContent, ord.Number)
	}

	// persisted and retrievable by number
	got, err := svc.GetByNumber(ord.Number)
	assert.NoError(t, err)
	assert.Equal(t, ord.Number, got.Number)
}

func TestService_Place_invalid(t *testing.T) {
	emailsvc.ClearSentMessages()
	svc := newTestService(t)

	no := validNewOrder()
	no.Customer.Email = "not-an-email"

	_, err := svc.Place(no)
	assert.Error(t, err)
	assert.Empty(t, emailsvc.SentMessages)

	orders, err := svc.QueryAll()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestService_GetByNumber_notFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByNumber("RP000")
	assert.Equal(t, ErrNotFound, err)
}
