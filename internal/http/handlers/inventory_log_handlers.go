package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	models "github.com/rogerio-castellano/inventory-app/internal/models"
	repo "github.com/rogerio-castellano/inventory-app/internal/repo"
)

func GetInventoryLogsHandler(w http.ResponseWriter, r *http.Request) {
	logs, err := logRepo.GetAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching inventory logs", err)
		return
	}
	if logs == nil {
		logs = []models.InventoryLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func GetInventoryLogsByProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", nil)
		return
	}

	logs, err := logRepo.GetByProductID(productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching inventory logs", err)
		return
	}
	if logs == nil {
		logs = []models.InventoryLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

// CreateInventoryLogHandler runs the adjustment workflow: it mutates the
// product's quantity and appends the audit entry in one atomic operation.
// This is the only way log entries are created.
func CreateInventoryLogHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryLogRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input", nil)
		return
	}

	if req.ProductID == nil || req.ChangeType == nil || req.QuantityChange == nil {
		writeError(w, http.StatusBadRequest, "product_id, change_type, and quantity_change are required", nil)
		return
	}
	if !models.ValidChangeType(*req.ChangeType) {
		writeError(w, http.StatusBadRequest, "change_type must be one of: restock, sale, adjustment", nil)
		return
	}

	entry, err := logRepo.Adjust(*req.ProductID, *req.ChangeType, *req.QuantityChange, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "Product not found", nil)
		case errors.Is(err, repo.ErrInsufficientQuantity):
			writeError(w, http.StatusBadRequest, "Insufficient quantity. Cannot reduce below 0.", nil)
		default:
			writeError(w, http.StatusInternalServerError, "Error creating inventory log", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ExportInventoryLogsHandler downloads a product's audit trail as CSV or JSON.
func ExportInventoryLogsHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", nil)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		writeError(w, http.StatusBadRequest, "format must be 'csv' or 'json'", nil)
		return
	}

	logs, err := logRepo.GetByProductID(productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching inventory logs", err)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory_logs.json"`)
		json.NewEncoder(w).Encode(logs)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory_logs.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "product_id", "change_type", "quantity_change",
			"previous_quantity", "new_quantity", "notes", "created_at"})
		for _, l := range logs {
			notes := ""
			if l.Notes != nil {
				notes = *l.Notes
			}
			_ = csvWriter.Write([]string{
				strconv.Itoa(l.ID),
				strconv.Itoa(l.ProductID),
				l.ChangeType,
				strconv.Itoa(l.QuantityChange),
				strconv.Itoa(l.PreviousQuantity),
				strconv.Itoa(l.NewQuantity),
				notes,
				l.CreatedAt.Format(time.RFC3339),
			})
		}
		csvWriter.Flush()
	}
}
