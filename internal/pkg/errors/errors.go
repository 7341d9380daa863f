package errors

import (
	"errors"
	"net/http"
)

// HttpError carries the status code the handler layer should respond with.
type HttpError struct {
	Code    int
	Message string
}

func (e *HttpError) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &HttpError{Code: http.StatusUnauthorized, Message: message}
}

func ForbiddenError(message string) error {
	return &HttpError{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) error {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &HttpError{Code: http.StatusConflict, Message: message}
}

func UnprocessableEntity(message string) error {
	return &HttpError{Code: http.StatusUnprocessableEntity, Message: message}
}

func InternalServerError(message string) error {
	return &HttpError{Code: http.StatusInternalServerError, Message: message}
}

// GetStatus extracts the HTTP status for an error, defaulting to 500.
func GetStatus(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
