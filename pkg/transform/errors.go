package transform

import "errors"

var (
	// ErrInvalidTableKey is returned when a substitution key is not exactly one character.
	ErrInvalidTableKey = errors.New("substitution key must be a single character")
)
