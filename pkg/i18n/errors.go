package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("translation adapter is nil")
	ErrNilFS      = errors.New("translation filesystem is nil")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Filesystem operations
	ErrLoadingCancelled      = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory = errors.New("failed to read translations directory")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")
)
