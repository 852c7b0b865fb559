package model

import "time"

// Category groups catalog products.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
