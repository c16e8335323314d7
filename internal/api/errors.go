package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"sharegov/internal/domain"
)

// errorResponse is the JSON body for every non-2xx response. Failures is
// populated for validation errors and carries one entry per problem found.
type errorResponse struct {
	Code     int                        `json:"code"`
	Message  string                     `json:"message"`
	Failures []domain.ValidationFailure `json:"failures,omitempty"`
}

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)

	resp := errorResponse{Code: status, Message: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Failures = verr.Failures
	}
	if status == http.StatusInternalServerError {
		resp.Message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
