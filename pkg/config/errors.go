package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadEnvFile is returned when an explicitly requested .env file cannot be read
	ErrReadEnvFile = errors.New("failed to read env file")

	// ErrInvalidSettings is returned when parsed settings fail validation
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
