package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// InMemoryInventoryLogRepository is an in-memory implementation of
// InventoryLogRepository, used as a test double. The mutex serializes
// Adjust calls, standing in for the row lock the Postgres version takes.
type InMemoryInventoryLogRepository struct {
	mu       sync.Mutex
	logs     []models.InventoryLog
	nextID   int
	products *InMemoryProductRepository
}

func NewInMemoryInventoryLogRepository(products *InMemoryProductRepository) *InMemoryInventoryLogRepository {
	return &InMemoryInventoryLogRepository{nextID: 1, products: products}
}

func (r *InMemoryInventoryLogRepository) GetAll() ([]models.InventoryLog, error) {
	r.mu.Lock()
	out := make([]models.InventoryLog, 0, len(r.logs))
	// newest first
	for i := len(r.logs) - 1; i >= 0; i-- {
		out = append(out, r.logs[i])
	}
	r.mu.Unlock()

	for i := range out {
		out[i].ProductName = r.products.nameOf(out[i].ProductID)
	}
	return out, nil
}

func (r *InMemoryInventoryLogRepository) GetByProductID(productID int) ([]models.InventoryLog, error) {
	r.mu.Lock()
	var out []models.InventoryLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].ProductID == productID {
			out = append(out, r.logs[i])
		}
	}
	r.mu.Unlock()

	for i := range out {
		out[i].ProductName = r.products.nameOf(out[i].ProductID)
	}
	return out, nil
}

func (r *InMemoryInventoryLogRepository) Adjust(productID int, changeType string, quantityChange int, notes *string) (models.InventoryLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, err := r.products.quantityOf(productID)
	if err != nil {
		return models.InventoryLog{}, err
	}

	newQuantity := previous + quantityChange
	if newQuantity < 0 {
		return models.InventoryLog{}, ErrInsufficientQuantity
	}

	r.products.setQuantity(productID, newQuantity)

	entry := models.InventoryLog{
		ID:               r.nextID,
		ProductID:        productID,
		ChangeType:       changeType,
		QuantityChange:   quantityChange,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Notes:            notes,
		CreatedAt:        time.Now().UTC(),
	}
	r.nextID++
	r.logs = append(r.logs, entry)
	return entry, nil
}

// Clear removes all log entries.
func (r *InMemoryInventoryLogRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = nil
	r.nextID = 1
}
