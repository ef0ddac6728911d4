package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	models "github.com/rogerio-castellano/inventory-app/internal/models"
	repo "github.com/rogerio-castellano/inventory-app/internal/repo"
)

func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching categories", err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func GetCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID", nil)
		return
	}

	category, err := categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, "Category not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching category", err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Category name is required", nil)
		return
	}

	category, err := categoryRepo.Create(req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			writeError(w, http.StatusConflict, "Category name already exists", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error creating category", err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID", nil)
		return
	}

	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Category name is required", nil)
		return
	}

	category, err := categoryRepo.Update(id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Category not found", nil)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			writeError(w, http.StatusConflict, "Category name already exists", nil)
		default:
			writeError(w, http.StatusInternalServerError, "Error updating category", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID", nil)
		return
	}

	category, err := categoryRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, "Category not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting category", err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteCategoryResult{
		Message:  "Category deleted successfully",
		Category: category,
	})
}
