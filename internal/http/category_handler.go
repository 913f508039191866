package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookrepo/internal/entity"
	"bookrepo/internal/usecase"
)

// CategoryHandler serves the /categories routes.
type CategoryHandler struct {
	repo usecase.CategoryRepository
}

func NewCategoryHandler(repo usecase.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// Collection dispatches /categories: list on GET, create on POST.
func (h *CategoryHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item dispatches /categories/{id}: get on GET, update on PUT, delete on
// DELETE.
func (h *CategoryHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/categories/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var category entity.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := ValidateStruct(category); details != nil {
		writeValidationError(w, details)
		return
	}

	created, err := h.repo.Create(r.Context(), category)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var category entity.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := ValidateStruct(category); details != nil {
		writeValidationError(w, details)
		return
	}

	updated, err := h.repo.Update(r.Context(), id, category)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	deleted, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}
