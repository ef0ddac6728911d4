package models

// Category represents a product category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
