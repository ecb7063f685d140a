package common

import (
	"errors"
	"net/http"

	"rollcall.com/rollcall/core"
)

// StatusForError maps the record service error taxonomy onto stable HTTP
// status codes. Anything unclassified is a 500.
func StatusForError(err error) int {
	var (
		validationErr *core.ValidationError
		conflictErr   *core.ConflictError
		notFoundErr   *core.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
