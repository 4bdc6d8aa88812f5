package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidTarget is returned by Struct for values that are not structs
	// or pointers to structs.
	ErrInvalidTarget = errors.New("validation target must be a struct")
)
