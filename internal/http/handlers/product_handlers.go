package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	models "github.com/rogerio-castellano/inventory-app/internal/models"
	repo "github.com/rogerio-castellano/inventory-app/internal/repo"
)

const defaultLowStockThreshold = 5

func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", nil)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching product", err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func GetLowStockProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetLowStock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching low stock products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input", nil)
		return
	}

	if req.Name == nil || req.Price == nil || req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "Name, price, and quantity are required", nil)
		return
	}
	if errs := validateProductValues(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, fieldErrorsMessage(errs), nil)
		return
	}

	product := models.Product{
		Name:              *req.Name,
		Description:       req.Description,
		Price:             *req.Price,
		Quantity:          *req.Quantity,
		LowStockThreshold: defaultLowStockThreshold,
		CategoryID:        req.CategoryID,
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	}

	created, err := productRepo.Create(product)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	if created.LowStock() {
		zap.L().Warn("product created at or below its low stock threshold",
			zap.Int("product_id", created.ID),
			zap.String("name", created.Name),
			zap.Int("quantity", created.Quantity),
			zap.Int("threshold", created.LowStockThreshold),
		)
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler performs a partial merge: omitted fields keep their
// stored value, while category_id is always overwritten by the request value,
// including to null. The asymmetry is what existing clients rely on.
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", nil)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input", nil)
		return
	}
	if errs := validateProductValues(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, fieldErrorsMessage(errs), nil)
		return
	}

	patch := repo.ProductPatch{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		CategoryID:        req.CategoryID,
	}
	updated, err := productRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating product", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", nil)
		return
	}

	product, err := productRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting product", err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteProductResult{
		Message: "Product deleted successfully",
		Product: product,
	})
}
