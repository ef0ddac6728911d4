package repo

import (
	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// CategoryRepository defines the interface for category data operations.
// Delete returns the removed record and clears the association on any
// products still referencing the category.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id int) (models.Category, error)
	Create(name string) (models.Category, error)
	Update(id int, name string) (models.Category, error)
	Delete(id int) (models.Category, error)
}
