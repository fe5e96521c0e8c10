package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// Client-facing messages.
const (
	msgTaskNotFound  = "Task not found"
	msgInvalidEntity = "Invalid task data"
	msgUnexpected    = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return msgUnexpected
	case errors.Is(err, store.ErrNotFound):
		return msgTaskNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity
	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the response for err. Validation errors become a 422
// field list, everything else a {"detail": ...} body carrying only the safe
// message. Not-found is expected traffic and is not logged with its cause;
// other 4xx causes are logged at WARN, 5xx at ERROR.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	switch status {
	case http.StatusNotFound:
		shared.RespondWithError(w, r, status, message)

	case http.StatusUnprocessableEntity:
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			shared.RespondWithValidationErrors(w, r, []shared.FieldError{{
				Loc:  []string{"body", validationErr.Field},
				Msg:  validationErr.Error(),
				Type: "value_error",
			}})
			return
		}
		shared.RespondWithErrorAndLog(w, r, status, message, err, shared.WithElevatedLogLevel())

	default:
		shared.RespondWithErrorAndLog(w, r, status, message, err)
	}
}
