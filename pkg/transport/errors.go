package transport

import (
	"encoding/json"
	"net/http"

	"github.com/moodreel/moodreel/pkg/api"
)

// statusByType maps error categories to HTTP status codes. Model failures
// surface as 500 because the client cannot act differently on a broken
// backend than on a broken service.
var statusByType = map[api.ErrorType]int{
	api.ErrorTypeInvalidRequest:  http.StatusBadRequest,
	api.ErrorTypeNotFound:        http.StatusNotFound,
	api.ErrorTypeTooManyRequests: http.StatusTooManyRequests,
	api.ErrorTypeServerError:     http.StatusInternalServerError,
	api.ErrorTypeModelError:      http.StatusInternalServerError,
}

// HTTPStatusFromError returns the HTTP status code for an APIError.
// Unknown types default to 500.
func HTTPStatusFromError(err *api.APIError) int {
	if status, ok := statusByType[err.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteErrorResponse serializes apiErr in the ErrorResponse envelope with an
// explicit status code. The HTTP adapter uses this for transport-level
// failures (oversized body, wrong content type) whose status does not follow
// from the error type.
func WriteErrorResponse(w http.ResponseWriter, apiErr *api.APIError, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: apiErr})
}

// WriteAPIError serializes apiErr with the status derived from its type.
func WriteAPIError(w http.ResponseWriter, apiErr *api.APIError) {
	WriteErrorResponse(w, apiErr, HTTPStatusFromError(apiErr))
}
