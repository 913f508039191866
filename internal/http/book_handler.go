package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookrepo/internal/entity"
	"bookrepo/internal/usecase"
)

// BookHandler serves the /books routes.
type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// Collection dispatches /books: list on GET, create on POST.
func (h *BookHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item dispatches /books/{id}: get on GET, update on PUT, delete on DELETE.
func (h *BookHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/books/")
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

// Search serves GET /books/search?q=term.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	books, err := h.repo.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BookHandler) list(w http.ResponseWriter, r *http.Request) {
	params := usecase.ListParams{
		Sort:      usecase.ParseSortKey(r.URL.Query().Get("sortingType")),
		Direction: usecase.ParseSortDirection(r.URL.Query().Get("sortingDirection")),
	}

	books, err := h.repo.List(r.Context(), params)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BookHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	book, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) create(w http.ResponseWriter, r *http.Request) {
	var book entity.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := ValidateStruct(book); details != nil {
		writeValidationError(w, details)
		return
	}

	created, err := h.repo.Create(r.Context(), book)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BookHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var book entity.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := ValidateStruct(book); details != nil {
		writeValidationError(w, details)
		return
	}

	updated, err := h.repo.Update(r.Context(), id, book)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *BookHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	deleted, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}
