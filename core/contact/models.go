package contact

import (
	"time"

	"github.com/jjyf27/redpro/core"
)

// Message is a stored contact-form submission.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"` // UTC
}

// NewMessage contains information needed to submit a contact message.
type NewMessage struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"message" validate:"required"`
}

func (nm *NewMessage) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Body = core.CleanString(nm.Body)
	return core.Validate.Struct(nm)
}
