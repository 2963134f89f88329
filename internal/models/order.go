package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the only status this service ever writes; progression
// to fulfilled/cancelled belongs to downstream systems.
const OrderStatusPending = "pending"

type Order struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CustomerID  uuid.UUID `json:"customer_id" db:"customer_id"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CartLine is one client-supplied {name, quantity} pair in an order request.
// Any price-like field a client sends is ignored; unit prices are always
// resolved server-side from the products table.
type CartLine struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest is the POST /api/orders body. TotalAmount is a pointer so
// a missing field can be told apart from an explicit zero.
type PlaceOrderRequest struct {
	CustomerName    string     `json:"customerName" validate:"required"`
	CustomerContact string     `json:"customerContact" validate:"required"`
	CustomerAddress string     `json:"customerAddress" validate:"required"`
	CartItems       []CartLine `json:"cartItems" validate:"required,min=1,dive"`
	TotalAmount     *float64   `json:"totalAmount" validate:"required"`
}

// OrderConfirmation reports a committed order. SkippedItems lists cart line
// names that did not resolve to a product; ComputedTotal is the sum of
// resolved unit prices times quantities, reported alongside the
// client-supplied total for reconciliation.
type OrderConfirmation struct {
	OrderID       uuid.UUID `json:"orderId"`
	SkippedItems  []string  `json:"skippedItems"`
	ComputedTotal float64   `json:"computedTotal"`
}
