package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is the shared mutable resource contended
// by concurrent checkouts and payment confirmations.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *int64
	Images      []string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
