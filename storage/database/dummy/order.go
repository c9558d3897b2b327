package dummydb

import (
	"sort"

	"github.com/jjyf27/redpro/core/order"
)

type orderRepository struct {
	db *orderTable
}

var _ order.Repository = (*orderRepository)(nil) // interface compliance check

func NewOrderRepository(db *DB) order.Repository {
	return &orderRepository{db: db.order}
}

func (repo *orderRepository) query() []order.Order {
	orders := make([]order.Order, 0, len(repo.db.table))
	for _, o := range repo.db.table {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].PlacedAt.After(orders[j].PlacedAt) })
	return orders
}

func (repo *orderRepository) CreateOrder(o order.Order) (order.Order, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkCount++
	o.ID = repo.db.pkCount
	repo.db.table[o.ID] = &o
	return o, nil
}

func (repo *orderRepository) QueryAllOrders() ([]order.Order, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *orderRepository) GetOrderByNumber(number string) (order.Order, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, o := range repo.db.table {
		if o.Number == number {
			return *o, nil
		}
	}
	return order.Order{}, order.ErrNotFound
}
