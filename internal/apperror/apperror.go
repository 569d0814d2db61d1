package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an AppError
type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeInvalidStatus Code = "INVALID_STATUS"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeDBError       Code = "DB_ERROR"
	CodeInternal      Code = "INTERNAL_ERROR"
)

// AppError carries a code for HTTP mapping and, for validation failures,
// a field-keyed map of user-facing messages.
type AppError struct {
	Code    Code
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation wraps a field map from a stay validation
func Validation(message string, fields map[string]string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Fields: fields}
}

// As extracts the first AppError in err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var (
	ErrSnapshotNotFound = errors.New("charge snapshot not found")
	ErrNotSettled       = errors.New("status is not a settled status")
	ErrUnknownStatus    = errors.New("unknown reservation status")
)

// HTTPStatus maps an error to the status code handlers should answer with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotSettled), errors.Is(err, ErrUnknownStatus):
		return http.StatusBadRequest
	}

	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeInvalidFormat, CodeInvalidStatus:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
