package handlers

import (
	repo "github.com/rogerio-castellano/inventory-app/internal/repo"
)

var (
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
	logRepo      repo.InventoryLogRepository
	userRepo     repo.UserRepository
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetInventoryLogRepo(r repo.InventoryLogRepository) {
	logRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}
