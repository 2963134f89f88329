package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog row. Products are created out-of-band; this service
// only ever reads them.
type Product struct {
	ID          uuid.UUID `json:"product_id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
}
