package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
)

// getPathID extracts an int64 id from the URL path parameter paramName.
// On failure it returns the field error to send back with a 422.
func getPathID(r *http.Request, paramName string) (int64, *shared.FieldError) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, &shared.FieldError{
			Loc:  []string{"path", paramName},
			Msg:  "Field required",
			Type: "missing",
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &shared.FieldError{
			Loc:  []string{"path", paramName},
			Msg:  "Input should be a valid integer",
			Type: "int_parsing",
		}
	}

	return id, nil
}

// decodeTaskRequest reads and validates a TaskRequest. It writes the 422
// response itself and returns false when the body is unusable.
func decodeTaskRequest(w http.ResponseWriter, r *http.Request) (*TaskRequest, bool) {
	var req TaskRequest

	err := shared.DecodeJSON(r, &req)
	if err == nil {
		err = shared.ValidateRequest(&req)
	}
	if err == nil {
		return &req, true
	}

	details := shared.BodyFieldErrors(err)
	if details == nil {
		details = []shared.FieldError{{Loc: []string{"body"}, Msg: "Invalid request body", Type: "value_error"}}
	}
	shared.RespondWithValidationErrors(w, r, details)
	return nil, false
}
