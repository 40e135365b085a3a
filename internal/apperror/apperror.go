package apperror

import "net/http"

// Error is the HTTP-facing error used everywhere above the store layer.
// Handlers and middleware raise it at the point of detection; the centralized
// error middleware in cmd/api is the only place that turns it into a response.
type Error struct {
	StatusCode int
	Msg        string
}

func (e *Error) Error() string {
	return e.Msg
}

func BadRequest(msg string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Msg: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Msg: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{StatusCode: http.StatusForbidden, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Msg: msg}
}
