package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrGenerationFailed     = errors.New("generation failed")
)
