package handlers_test_suite

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/rogerio-castellano/inventory-app/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-app/internal/models"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := createProduct(r, map[string]any{
		"name": "Laptop", "description": "13 inch", "price": 1500.0, "quantity": 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	p, err := decodeBody[models.Product](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if p.Name != "Laptop" || p.Price != 1500.0 || p.Quantity != 1 {
		t.Errorf("unexpected product %+v", p)
	}
	if p.Description == nil || *p.Description != "13 inch" {
		t.Errorf("expected description to round-trip, got %v", p.Description)
	}
	if p.LowStockThreshold != 5 {
		t.Errorf("expected default threshold 5, got %d", p.LowStockThreshold)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Errorf("expected timestamps to be set")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{"price": 10.0, "quantity": 1}},
		{"missing price", map[string]any{"name": "Mouse", "quantity": 1}},
		{"missing quantity", map[string]any{"name": "Mouse", "price": 10.0}},
		{"zero price", map[string]any{"name": "Mouse", "price": 0.0, "quantity": 1}},
		{"negative price", map[string]any{"name": "Mouse", "price": -5.0, "quantity": 1}},
		{"negative quantity", map[string]any{"name": "Mouse", "price": 10.0, "quantity": -1}},
		{"negative threshold", map[string]any{"name": "Mouse", "price": 10.0, "quantity": 1, "low_stock_threshold": -2}},
		{"unknown field", map[string]any{"name": "Mouse", "price": 10.0, "quantity": 1, "colour": "red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestGetProductsHandler_NewestFirstWithCategoryName(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := createCategory(r, "Office")
	category, _ := decodeBody[models.Category](w)

	first, _ := decodeBody[models.Product](createProduct(r, map[string]any{
		"name": "Desk", "price": 200.0, "quantity": 2, "category_id": category.ID,
	}))
	second, _ := decodeBody[models.Product](createProduct(r, map[string]any{
		"name": "Chair", "price": 90.0, "quantity": 7,
	}))

	w = doJSON(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	products, err := decodeBody[[]models.Product](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != second.ID || products[1].ID != first.ID {
		t.Errorf("expected newest-first order, got [%d %d]", products[0].ID, products[1].ID)
	}
	if products[1].CategoryName == nil || *products[1].CategoryName != "Office" {
		t.Errorf("expected joined category name 'Office', got %v", products[1].CategoryName)
	}
	if products[0].CategoryName != nil {
		t.Errorf("expected no category name, got %q", *products[0].CategoryName)
	}
}

func TestGetLowStockProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createProduct(r, map[string]any{"name": "Plenty", "price": 1.0, "quantity": 100})
	createProduct(r, map[string]any{"name": "Scarce", "price": 1.0, "quantity": 2})
	createProduct(r, map[string]any{"name": "AtThreshold", "price": 1.0, "quantity": 5})

	w := doJSON(r, http.MethodGet, "/products/low-stock", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	products, _ := decodeBody[[]models.Product](w)
	if len(products) != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", len(products))
	}
	// ascending by quantity
	if products[0].Name != "Scarce" || products[1].Name != "AtThreshold" {
		t.Errorf("unexpected order: %q, %q", products[0].Name, products[1].Name)
	}
}

func TestUpdateProductHandler_PartialMerge(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := createCategory(r, "Tools")
	category, _ := decodeBody[models.Category](w)

	w = createProduct(r, map[string]any{
		"name": "Widget", "description": "blue", "price": 9.99, "quantity": 3,
		"low_stock_threshold": 7, "category_id": category.ID,
	})
	created, _ := decodeBody[models.Product](w)

	// only quantity in the payload: other fields keep their values, but the
	// omitted category_id clears the association
	w = updateProduct(r, created.ID, map[string]any{"quantity": 10})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	updated, _ := decodeBody[models.Product](w)

	if updated.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", updated.Quantity)
	}
	if updated.Name != "Widget" || updated.Price != 9.99 || updated.LowStockThreshold != 7 {
		t.Errorf("expected other fields unchanged, got %+v", updated)
	}
	if updated.Description == nil || *updated.Description != "blue" {
		t.Errorf("expected description unchanged, got %v", updated.Description)
	}
	if updated.CategoryID != nil {
		t.Errorf("expected category_id cleared when omitted, got %v", *updated.CategoryID)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("expected updated_at to advance")
	}

	// category_id present in the payload is applied
	w = updateProduct(r, created.ID, map[string]any{"category_id": category.ID})
	relinked, _ := decodeBody[models.Product](w)
	if relinked.CategoryID == nil || *relinked.CategoryID != category.ID {
		t.Errorf("expected category_id %d, got %v", category.ID, relinked.CategoryID)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := updateProduct(r, 999, map[string]any{"quantity": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := createProduct(r, map[string]any{"name": "Doomed", "price": 1.0, "quantity": 1})
	created, _ := decodeBody[models.Product](w)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	result, _ := decodeBody[handler.DeleteProductResult](w)
	if result.Message != "Product deleted successfully" || result.Product.ID != created.ID {
		t.Errorf("unexpected delete result %+v", result)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestImportProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	csvContent := "name,price,quantity,low_stock_threshold\n" +
		"Bolt,0.10,500,50\n" +
		",1.00,10,\n" + // missing name
		"Nut,0.05,-3,\n" // negative quantity

	body, contentType := multipartCSV(t, csvContent, "products.csv")
	req := httptest.NewRequest(http.MethodPost, "/products/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	result, _ := decodeBody[handler.ImportProductsResult](w)
	if result.Imported != 1 {
		t.Errorf("expected 1 imported row, got %d", result.Imported)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %d: %+v", len(result.Errors), result.Errors)
	}

	products, _ := productRepo.GetAll()
	if len(products) != 1 || products[0].Name != "Bolt" || products[0].LowStockThreshold != 50 {
		t.Errorf("unexpected stored products %+v", products)
	}
}

func multipartCSV(t *testing.T, csvContent, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
