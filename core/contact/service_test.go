package contact_test

import (
	"net/mail"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjyf27/redpro/core"
	. "github.com/jjyf27/redpro/core/contact"
	emailsvc "github.com/jjyf27/redpro/services/email"
	dummydb "github.com/jjyf27/redpro/storage/database/dummy"
)

func TestMain(m *testing.M) {
	core.InitValidators()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	conf := &core.Config{
		AppName:    "RedPro",
		TestMode:   true,
		AdminEmail: mail.Address{Name: "RedPro", Address: "admin@redpro.pe"},
	}
	db, _ := dummydb.Open()
	return NewService(dummydb.NewContactRepository(db), emailsvc.NewConsoleServiceMock(conf), conf)
}

func TestService_Submit(t *testing.T) {
	emailsvc.ClearSentMessages()
	svc := newTestService(t)

	msg, err := svc.Submit(NewMessage{
		Name:  " Juan Pérez ",
		Email: "JUAN@test.pe",
		Body:  "¿El curso de CCNA incluye laboratorios?",
	})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Juan Pérez", msg.Name)
	assert.Equal(t, "juan@test.pe", msg.Email)
	assert.False(t, msg.ReceivedAt.IsZero())

	// admin notification (reply-to the sender) + sender confirmation
	if assert.Len(t, emailsvc.SentMessages, 2) {
		admin := emailsvc.SentMessages[0]
		assert.Equal(t, "admin@redpro.pe", admin.To[0].Address)
		if assert.NotNil(t, admin.ReplyTo) {
			assert.Equal(t, "juan@test.pe", admin.ReplyTo.Address)
		}
		assert.Equal(t, "juan@test.pe", emailsvc.SentMessages[1].To[0].Address)
	}

	msgs, err := svc.QueryAll()
	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestService_Submit_invalid(t *testing.T) {
	emailsvc.ClearSentMessages()
	svc := newTestService(t)

	tests := []struct {
		name string
		in   NewMessage
	}{
		{name: "missing name", in: NewMessage{Email: "a@b.pe", Body: "hola"}},
		{name: "bad email", in: NewMessage{Name: "Juan", Email: "no", Body: "hola"}},
		{name: "empty message", in: NewMessage{Name: "Juan", Email: "a@b.pe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(tt.in)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, emailsvc.SentMessages)
}
