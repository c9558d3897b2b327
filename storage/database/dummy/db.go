// Package dummydb provides in-memory repositories used in tests and as
// a fallback when no database is reachable at boot.
package dummydb

import (
	"sync"

	"github.com/jjyf27/redpro/core/contact"
	"github.com/jjyf27/redpro/core/course"
	"github.com/jjyf27/redpro/core/order"
	"github.com/jjyf27/redpro/core/user"
)

type (
	DB struct {
		course  *courseTable
		order   *orderTable
		contact *contactTable
		user    *userTable
	}

	courseTable struct {
		sync.RWMutex
		table   map[int]*course.Course
		pkCount int
	}

	orderTable struct {
		sync.RWMutex
		table   map[int]*order.Order
		pkCount int
	}

	contactTable struct {
		sync.RWMutex
		table map[string]*contact.Message
	}

	userTable struct {
		sync.RWMutex
		table   map[int]*user.User
		pkCount int
	}
)

func Open() (*DB, error) {
	db := &DB{
		course:  &courseTable{table: make(map[int]*course.Course)},
		order:   &orderTable{table: make(map[int]*order.Order)},
		contact: &contactTable{table: make(map[string]*contact.Message)},
		user:    &userTable{table: make(map[int]*user.User)},
	}
	return db, nil
}
