package repo

import (
	"sync"

	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository,
// used as a test double.
type InMemoryUserRepository struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: map[string]models.User{}, nextID: 1}
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Username]; exists {
		return models.User{}, ErrDuplicatedValueUnique
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return u, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}
