package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/crosswordgen/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidWordListName = "INVALID_WORD_LIST_NAME"
	CodeWordListNotFound    = "WORD_LIST_NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidInput, "No usable words: words must be alphabetic and at least 2 letters"}}
	case errors.Is(err, model.ErrInvalidWordListName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWordListName, "Word list names are lowercase letters, digits, '-' and '_'"}}
	case errors.Is(err, model.ErrWordListNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordListNotFound, "Word list not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// StatusOf returns the HTTP status err would be written with
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
