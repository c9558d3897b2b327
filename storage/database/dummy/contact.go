package dummydb

import (
	"sort"

	"github.com/jjyf27/redpro/core/contact"
)

type contactRepository struct {
	db *contactTable
}

var _ contact.Repository = (*contactRepository)(nil) // interface compliance check

func NewContactRepository(db *DB) contact.Repository {
	return &contactRepository{db: db.contact}
}

func (repo *contactRepository) CreateMessage(msg contact.Message) (contact.Message, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[msg.ID] = &msg
	return msg, nil
}

func (repo *contactRepository) QueryAllMessages() ([]contact.Message, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	msgs := make([]contact.Message, 0, len(repo.db.table))
	for _, msg := range repo.db.table {
		msgs = append(msgs, *msg)
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ReceivedAt.After(msgs[j].ReceivedAt) })
	return msgs, nil
}
