package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	models "github.com/rogerio-castellano/inventory-app/internal/models"
)

type csvRow struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Threshold   *int
	CategoryID  *int
}

func parseProductsCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, errors.New("CSV must have a 'name' column")
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:        field(record, "name"),
			Description: field(record, "description"),
		}
		row.Price, _ = strconv.ParseFloat(field(record, "price"), 64)
		row.Quantity, _ = strconv.Atoi(field(record, "quantity"))
		if s := field(record, "low_stock_threshold"); s != "" {
			if v, err := strconv.Atoi(s); err == nil {
				row.Threshold = &v
			}
		}
		if s := field(record, "category_id"); s != "" {
			if v, err := strconv.Atoi(s); err == nil {
				row.CategoryID = &v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if r.Name == "" {
		return errors.New("missing name")
	}
	if r.Price <= 0 {
		return errors.New("invalid price")
	}
	if r.Quantity < 0 {
		return errors.New("invalid quantity")
	}
	if r.Threshold != nil && *r.Threshold < 0 {
		return errors.New("invalid low_stock_threshold")
	}
	return nil
}

// ImportProductsHandler bulk-creates products from an uploaded CSV file.
// Rows are processed independently; failures are reported per row and do not
// abort the rest of the import.
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file", nil)
		return
	}
	defer file.Close()

	records, err := parseProductsCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	var imported int
	var errorsList []FieldError

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, FieldError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		product := models.Product{
			Name:              rec.Name,
			Price:             rec.Price,
			Quantity:          rec.Quantity,
			LowStockThreshold: defaultLowStockThreshold,
			CategoryID:        rec.CategoryID,
		}
		if rec.Description != "" {
			product.Description = &rec.Description
		}
		if rec.Threshold != nil {
			product.LowStockThreshold = *rec.Threshold
		}

		if _, err := productRepo.Create(product); err != nil {
			errorsList = append(errorsList, FieldError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		imported++
	}

	writeJSON(w, http.StatusCreated, ImportProductsResult{
		Imported: imported,
		Errors:   errorsList,
	})
}
