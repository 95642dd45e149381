package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sebastian-gasior/jobfit/internal/engine"
	"github.com/sebastian-gasior/jobfit/internal/schemas"
	"github.com/sebastian-gasior/jobfit/internal/store"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// httpStatus maps application errors to HTTP status codes.
func httpStatus(err error) int {
	var invalidInput *engine.InvalidInputError
	var validation *schemas.ValidationError
	switch {
	case errors.As(err, &invalidInput), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, httpStatus(err), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
