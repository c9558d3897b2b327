package database

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jjyf27/redpro/core/contact"
)

type contactRepository struct {
	db *sqlx.DB
}

var _ contact.Repository = (*contactRepository)(nil) // interface compliance check

func NewContactRepository(db *sqlx.DB) contact.Repository {
	return &contactRepository{db: db}
}

type dbMessage struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Message    string    `db:"message"`
	ReceivedAt time.Time `db:"received_at"`
}

func (repo *contactRepository) CreateMessage(msg contact.Message) (contact.Message, error) {
	query := `
	INSERT INTO contact_message (id, name, email, message, received_at)
	VALUES ($1, $2, $3, $4, $5)`
	if _, err := repo.db.Exec(query, msg.ID, msg.Name, msg.Email, msg.Body, msg.ReceivedAt); err != nil {
		return contact.Message{}, err
	}
	return msg, nil
}

func (repo *contactRepository) QueryAllMessages() ([]contact.Message, error) {
	var rows []dbMessage
	if err := repo.db.Select(&rows, `SELECT * FROM contact_message ORDER BY received_at DESC`); err != nil {
		return nil, err
	}
	msgs := make([]contact.Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, contact.Message{
			ID:         row.ID,
			Name:       row.Name,
			Email:      row.Email,
			Body:       row.Message,
			ReceivedAt: row.ReceivedAt.UTC(),
		})
	}
	return msgs, nil
}
