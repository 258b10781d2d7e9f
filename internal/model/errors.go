package model

import "errors"

// Common errors used across the application
var (
	// Generation errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrPlacementExhausted = errors.New("no valid placement for word")
	ErrBoundsExceeded     = errors.New("placement exceeds maximum dimensions")

	// Word list errors
	ErrWordListNotFound    = errors.New("word list not found")
	ErrInvalidWordListName = errors.New("invalid word list name")
)
