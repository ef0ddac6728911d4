package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used as a test double. Category names are resolved
// through the linked category repository, mirroring the read-time join.
type InMemoryProductRepository struct {
	mu         sync.Mutex
	products   []models.Product
	nextID     int
	categories *InMemoryCategoryRepository
}

func NewInMemoryProductRepository(categories *InMemoryCategoryRepository) *InMemoryProductRepository {
	r := &InMemoryProductRepository{nextID: 1, categories: categories}
	if categories != nil {
		categories.LinkProducts(r)
	}
	return r
}

func (r *InMemoryProductRepository) withCategoryName(p models.Product) models.Product {
	if p.CategoryID != nil && r.categories != nil {
		p.CategoryName = r.categories.nameByID(*p.CategoryID)
	}
	return p
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	for i := range out {
		out[i] = r.withCategoryName(out[i])
	}
	return out, nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.Lock()
	var found *models.Product
	for _, p := range r.products {
		if p.ID == id {
			cp := p
			found = &cp
			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return models.Product{}, ErrProductNotFound
	}
	return r.withCategoryName(*found), nil
}

func (r *InMemoryProductRepository) GetLowStock() ([]models.Product, error) {
	r.mu.Lock()
	var out []models.Product
	for _, p := range r.products {
		if p.Quantity <= p.LowStockThreshold {
			out = append(out, p)
		}
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	for i := range out {
		out[i] = r.withCategoryName(out[i])
	}
	return out, nil
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	p.CategoryName = nil
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) Update(id int, patch ProductPatch) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		p := &r.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Quantity != nil {
			p.Quantity = *patch.Quantity
		}
		if patch.LowStockThreshold != nil {
			p.LowStockThreshold = *patch.LowStockThreshold
		}
		// category_id is always overwritten, nil clears it
		p.CategoryID = patch.CategoryID
		p.UpdatedAt = time.Now().UTC()
		return *p, nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Clear removes all products.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = nil
	r.nextID = 1
}

func (r *InMemoryProductRepository) detachCategory(categoryID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].CategoryID != nil && *r.products[i].CategoryID == categoryID {
			r.products[i].CategoryID = nil
		}
	}
}

func (r *InMemoryProductRepository) quantityOf(id int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return p.Quantity, nil
		}
	}
	return 0, ErrProductNotFound
}

func (r *InMemoryProductRepository) setQuantity(id, quantity int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Quantity = quantity
			r.products[i].UpdatedAt = time.Now().UTC()
			return
		}
	}
}

func (r *InMemoryProductRepository) nameOf(id int) *string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			name := p.Name
			return &name
		}
	}
	return nil
}
