package repo

import (
	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// ProductPatch carries a partial update. Nil fields keep their stored value,
// except CategoryID which is always applied: a nil CategoryID clears the
// association. Clients that omit category_id therefore detach the product
// from its category.
type ProductPatch struct {
	Name              *string
	Description       *string
	Price             *float64
	Quantity          *int
	LowStockThreshold *int
	CategoryID        *int
}

// ProductRepository defines the interface for product data operations.
// Reads resolve CategoryName through a join; writes return the bare row.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetLowStock() ([]models.Product, error)
	Create(product models.Product) (models.Product, error)
	Update(id int, patch ProductPatch) (models.Product, error)
	Delete(id int) (models.Product, error)
}
