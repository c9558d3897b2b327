package contact

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/jjyf27/redpro/core"
)

type (
	Repository interface {
		CreateMessage(msg Message) (Message, error)
		QueryAllMessages() ([]Message, error)
	}

	Service struct {
		repo Repository
		mail core.EmailService
		conf *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mail: mailSvc, conf: conf}
}

// Submit persists the message and notifies both the admin inbox and the
// sender. Email delivery is best-effort; persistence is what matters.
func (svc *Service) Submit(nm NewMessage) (Message, error) {
	if err := nm.Validate(); err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:         uuid.NewString(),
		Name:       nm.Name,
		Email:      nm.Email,
		Body:       nm.Body,
		ReceivedAt: time.Now().UTC(),
	}
	msg, err := svc.repo.CreateMessage(msg)
	if err != nil {
		return Message{}, err
	}

	svc.mail.SendMessages(
		&core.EmailMessage{
			To:          []mail.Address{svc.conf.AdminEmail},
			ReplyTo:     &mail.Address{Name: msg.Name, Address: msg.Email},
			Subject:     fmt.Sprintf("Nuevo mensaje de %s", msg.Name),
			TextContent: fmt.Sprintf("Nombre: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Body),
		},
		&core.EmailMessage{
			To:      []mail.Address{{Name: msg.Name, Address: msg.Email}},
			Subject: "Confirmación de mensaje recibido",
			TextContent: fmt.Sprintf(
				"Hola %s,\n\nHemos recibido tu mensaje y nos pondremos en contacto contigo lo antes posible.\n\nTiempo de respuesta estimado: 24-48 horas hábiles.\n",
				msg.Name,
			),
		},
	)
	return msg, nil
}

func (svc *Service) QueryAll() ([]Message, error) {
	return svc.repo.QueryAllMessages()
}
