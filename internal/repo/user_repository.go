package repo

import (
	"github.com/rogerio-castellano/inventory-app/internal/models"
)

type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
