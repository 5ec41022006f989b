package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest file is not valid JSON or YAML
	ErrInvalidFormat = errors.New("manifest must be valid JSON or YAML")

	// ErrMissingName indicates the manifest has no name field
	ErrMissingName = errors.New("manifest name cannot be empty")

	// ErrMissingVersion indicates the manifest has no version field
	ErrMissingVersion = errors.New("manifest version cannot be empty")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")
)
