package models

import "time"

const (
	ChangeTypeRestock    = "restock"
	ChangeTypeSale       = "sale"
	ChangeTypeAdjustment = "adjustment"
)

// ValidChangeType reports whether s is one of the accepted change types.
func ValidChangeType(s string) bool {
	return s == ChangeTypeRestock || s == ChangeTypeSale || s == ChangeTypeAdjustment
}

// InventoryLog is an immutable audit record of a quantity adjustment.
// PreviousQuantity and NewQuantity are point-in-time snapshots, so the entry
// stays meaningful even if the product is later changed or removed.
// ProductName is joined at read time.
type InventoryLog struct {
	ID               int       `json:"id"`
	ProductID        int       `json:"product_id"`
	ChangeType       string    `json:"change_type"`
	QuantityChange   int       `json:"quantity_change"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Notes            *string   `json:"notes"`
	ProductName      *string   `json:"product_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
