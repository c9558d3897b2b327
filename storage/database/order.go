package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/jjyf27/redpro/core/order"
)

type orderRepository struct {
	db *sqlx.DB
}

var _ order.Repository = (*orderRepository)(nil) // interface compliance check

func NewOrderRepository(db *sqlx.DB) order.Repository {
	return &orderRepository{db: db}
}

// dbOrder mirrors the order table; line items travel as a JSONB document.
type dbOrder struct {
	ID              int            `db:"id"`
	Number          string         `db:"number"`
	CustomerName    string         `db:"customer_name"`
	CustomerEmail   string         `db:"customer_email"`
	CustomerPhone   string         `db:"customer_phone"`
	CustomerDNI     string         `db:"customer_dni"`
	Items           types.JSONText `db:"items"`
	Subtotal        float64        `db:"subtotal"`
	DiscountPercent int            `db:"discount_percent"`
	DiscountAmount  float64        `db:"discount_amount"`
	Tax             float64        `db:"tax"`
	Total           float64        `db:"total"`
	PaymentMethod   string         `db:"payment_method"`
	Status          string         `db:"status"`
	PlacedAt        time.Time      `db:"placed_at"`
}

func (o dbOrder) toCore() (order.Order, error) {
	var items []order.Line
	if err := o.Items.Unmarshal(&items); err != nil {
		return order.Order{}, err
	}
	return order.Order{
		ID:     o.ID,
		Number: o.Number,
		Customer: order.Customer{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: o.CustomerPhone,
			DNI:   o.CustomerDNI,
		},
		Items:           items,
		Subtotal:        o.Subtotal,
		DiscountPercent: o.DiscountPercent,
		DiscountAmount:  o.DiscountAmount,
		Tax:             o.Tax,
		Total:           o.Total,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		PlacedAt:        o.PlacedAt.UTC(),
	}, nil
}

func (repo *orderRepository) CreateOrder(o order.Order) (order.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return order.Order{}, err
	}
	query := `
	INSERT INTO "order" (number, customer_name, customer_email, customer_phone, customer_dni,
	                     items, subtotal, discount_percent, discount_amount, tax, total,
	                     payment_method, status, placed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING id`
	err = repo.db.QueryRow(
		query, o.Number, o.Customer.Name, o.Customer.Email, o.Customer.Phone, o.Customer.DNI,
		types.JSONText(items), o.Subtotal, o.DiscountPercent, o.DiscountAmount, o.Tax, o.Total,
		o.PaymentMethod, o.Status, o.PlacedAt,
	).Scan(&o.ID)
	if err != nil {
		return order.Order{}, err
	}
	return o, nil
}

func (repo *orderRepository) QueryAllOrders() ([]order.Order, error) {
	var rows []dbOrder
	if err := repo.db.Select(&rows, `SELECT * FROM "order" ORDER BY placed_at DESC`); err != nil {
		return nil, err
	}
	orders := make([]order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toCore()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (repo *orderRepository) GetOrderByNumber(number string) (order.Order, error) {
	var row dbOrder
	if err := repo.db.Get(&row, `SELECT * FROM "order" WHERE number = $1`, number); err != nil {
		if err == sql.ErrNoRows {
			return order.Order{}, order.ErrNotFound
		}
		return order.Order{}, err
	}
	return row.toCore()
}
