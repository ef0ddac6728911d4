package models

import "time"

// Product represents a product entity in the inventory system. CategoryName
// is joined at read time and never stored.
type Product struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	Price             float64   `json:"price"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CategoryID        *int      `json:"category_id"`
	CategoryName      *string   `json:"category_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LowStock reports whether the product is at or below its threshold.
func (p Product) LowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
