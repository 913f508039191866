package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookrepo/internal/usecase"
)

// ErrorMessage is the error body shape the API has always exposed.
type ErrorMessage struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorMessage{Message: message})
}

// writeRepoError maps repository errors to status codes: NotFound -> 404,
// AlreadyExists -> 409, anything else (write failures) -> 500.
func writeRepoError(w http.ResponseWriter, err error) {
	var notFound *usecase.NotFoundError
	var exists *usecase.AlreadyExistsError
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &exists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
