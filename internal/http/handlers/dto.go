package handlers

import (
	"github.com/rogerio-castellano/inventory-app/internal/models"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

// ProductRequest covers both create and partial update. Pointer fields
// distinguish "absent" from zero values.
type ProductRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	Quantity          *int     `json:"quantity"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
	CategoryID        *int     `json:"category_id"`
}

type InventoryLogRequest struct {
	ProductID      *int    `json:"product_id"`
	ChangeType     *string `json:"change_type"`
	QuantityChange *int    `json:"quantity_change"`
	Notes          *string `json:"notes"`
}

type DeleteCategoryResult struct {
	Message  string          `json:"message"`
	Category models.Category `json:"category"`
}

type DeleteProductResult struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ImportProductsResult struct {
	Imported int          `json:"imported"`
	Errors   []FieldError `json:"errors"`
}

type HealthResult struct {
	Status string `json:"status"`
}
