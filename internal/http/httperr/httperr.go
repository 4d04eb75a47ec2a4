// Package httperr carries application errors to the HTTP boundary.
//
// Handlers return or construct *Error values for expected failures
// (validation, not-found) and hand everything to Write, the single
// terminal translation stage. Unexpected errors never leak detail to
// the client.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Error is an application error with an HTTP status attached.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Message: message, Status: status}
}

func BadRequestf(format string, args ...any) *Error {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) *Error {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...))
}

// envelope is the wire shape of every error response. The message is
// duplicated at the top level for clients that don't dig into the
// error object.
type envelope struct {
	Err     *Error `json:"error"`
	Message string `json:"message"`
}

// Write translates err into an HTTP response. Application errors keep
// their status and message; anything else is logged and reported as a
// generic internal failure.
func Write(w http.ResponseWriter, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		slog.Error("unexpected error", "error", err)

		appErr = New(http.StatusInternalServerError, "internal server error")
	}

	JSON(w, appErr.Status, envelope{Err: appErr, Message: appErr.Message})
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
