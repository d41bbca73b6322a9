package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/schemas"
)

// KindValidation is the error kind reported for malformed request bodies.
const KindValidation = "validation"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Kind   string               `json:"kind,omitempty"`
	Fields []schemas.FieldError `json:"fields,omitempty"`
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var schemaErr *schemas.ValidationError
	if errors.As(err, &validationErr) || errors.As(err, &schemaErr) {
		return http.StatusBadRequest
	}

	switch llm.Kind(err) {
	case llm.KindConfiguration:
		return http.StatusServiceUnavailable
	case llm.KindInvalidInput:
		return http.StatusBadRequest
	case llm.KindAuthentication:
		return http.StatusUnauthorized
	case llm.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKind returns the kind code reported alongside an error response.
func ErrorKind(err error) string {
	var validationErr *ErrValidation
	var schemaErr *schemas.ValidationError
	if errors.As(err, &validationErr) || errors.As(err, &schemaErr) {
		return KindValidation
	}
	if kind := llm.Kind(err); kind != "" {
		return kind
	}
	return llm.KindUnknown
}

func fieldErrors(err error) []schemas.FieldError {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return schemaErr.Errors
	}
	return nil
}
