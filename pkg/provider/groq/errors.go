package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"

	"github.com/moodreel/moodreel/pkg/api"
)

// mapError converts an error returned by the Groq SDK into an APIError.
// HTTP status codes from the backend take precedence; everything else is
// treated as a connection-level failure.
func mapError(err error) *api.APIError {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return mapStatusError(apierr)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return api.NewModelError("backend request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return api.NewServerError("backend request canceled")
	}

	return api.NewServerError(fmt.Sprintf("backend connection error: %s", err.Error()))
}

// mapStatusError converts a non-2xx backend status into an APIError with the
// backend's own message when one was returned.
func mapStatusError(apierr *openai.Error) *api.APIError {
	message := apierr.Message

	switch {
	case apierr.StatusCode == http.StatusBadRequest:
		if message == "" {
			message = "invalid request to backend"
		}
		return api.NewInvalidRequestError("", message)

	case apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden:
		if message == "" {
			message = "backend authentication failed"
		}
		return api.NewServerError(message)

	case apierr.StatusCode == http.StatusNotFound:
		if message == "" {
			message = "backend resource not found"
		}
		return api.NewNotFoundError(message)

	case apierr.StatusCode == http.StatusTooManyRequests:
		if message == "" {
			message = "backend rate limit exceeded"
		}
		return api.NewTooManyRequestsError(message)

	case apierr.StatusCode >= http.StatusInternalServerError:
		if message == "" {
			message = fmt.Sprintf("backend server error (HTTP %d)", apierr.StatusCode)
		}
		return api.NewModelError(message)

	default:
		if message == "" {
			message = fmt.Sprintf("unexpected backend error (HTTP %d)", apierr.StatusCode)
		}
		return api.NewServerError(message)
	}
}
