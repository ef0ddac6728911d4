package handlers

import (
	"strings"
)

type FieldError struct {
	Field       string `json:"field,omitempty"`
	Description string `json:"description"`
}

// validateProductValues checks the fields that are present. Presence of
// required fields is checked separately by the create handler.
func validateProductValues(req ProductRequest) []FieldError {
	var errs []FieldError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Description: "Name must not be empty"})
	}
	if req.Price != nil && *req.Price <= 0 {
		errs = append(errs, FieldError{Field: "price", Description: "Price must be greater than zero"})
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Description: "Quantity cannot be negative"})
	}
	if req.LowStockThreshold != nil && *req.LowStockThreshold < 0 {
		errs = append(errs, FieldError{Field: "low_stock_threshold", Description: "Low stock threshold cannot be negative"})
	}
	return errs
}

func fieldErrorsMessage(errs []FieldError) string {
	descriptions := make([]string, len(errs))
	for i, e := range errs {
		descriptions[i] = e.Description
	}
	return strings.Join(descriptions, "; ")
}
