package repo

import (
	"sort"
	"sync"

	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository, used as a test double.
type InMemoryCategoryRepository struct {
	mu         sync.Mutex
	categories []models.Category
	nextID     int
	products   *InMemoryProductRepository
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{nextID: 1}
}

// LinkProducts wires the product repository so category deletion can clear
// dangling references, mirroring the ON DELETE SET NULL constraint.
func (r *InMemoryCategoryRepository) LinkProducts(p *InMemoryProductRepository) {
	r.products = p
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Create(name string) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == name {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	category := models.Category{ID: r.nextID, Name: name}
	r.nextID++
	r.categories = append(r.categories, category)
	return category, nil
}

func (r *InMemoryCategoryRepository) Update(id int, name string) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == name && c.ID != id {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	for i, c := range r.categories {
		if c.ID == id {
			r.categories[i].Name = name
			return r.categories[i], nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Delete(id int) (models.Category, error) {
	r.mu.Lock()
	var removed models.Category
	found := false
	for i, c := range r.categories {
		if c.ID == id {
			removed = c
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			found = true
			break
		}
	}
	r.mu.Unlock()

	if !found {
		return models.Category{}, ErrCategoryNotFound
	}
	if r.products != nil {
		r.products.detachCategory(id)
	}
	return removed, nil
}

// Clear removes all categories.
func (r *InMemoryCategoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = nil
	r.nextID = 1
}

func (r *InMemoryCategoryRepository) nameByID(id int) *string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == id {
			name := c.Name
			return &name
		}
	}
	return nil
}
