package repo

import (
	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// InventoryLogRepository defines the interface for the audit trail.
//
// Adjust is the only way a log entry comes into existence: it reads the
// product's current quantity, applies quantityChange, rejects the operation
// with ErrInsufficientQuantity if the result would be negative, and otherwise
// persists the new quantity together with exactly one log entry. The whole
// sequence is atomic; concurrent adjustments on the same product serialize.
type InventoryLogRepository interface {
	GetAll() ([]models.InventoryLog, error)
	GetByProductID(productID int) ([]models.InventoryLog, error)
	Adjust(productID int, changeType string, quantityChange int, notes *string) (models.InventoryLog, error)
}
