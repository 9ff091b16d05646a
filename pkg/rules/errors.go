package rules

import "errors"

var (
	ErrReadRules  = errors.New("failed to read rules file")
	ErrParseRules = errors.New("failed to parse rules file")
	ErrFileExists = errors.New("file already exists")
	ErrWriteRules = errors.New("failed to write rules file")
)
