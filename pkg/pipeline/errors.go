package pipeline

import "errors"

var (
	// ErrNothingToDo is returned when neither a word nor a non-empty input was given.
	ErrNothingToDo = errors.New("nothing to do")
	ErrUnknownMode = errors.New("unknown mode")
	ErrTempOutput  = errors.New("failed to prepare temporary output")
)
