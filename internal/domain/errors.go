package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrInvalidVersion indicates the manifest version is not a dotted-integer string
	ErrInvalidVersion = errors.New("invalid version string")

	// ErrSourceNotFound indicates the source root does not exist
	ErrSourceNotFound = errors.New("source root not found")
)

// UsageError represents an invalid invocation: wrong argument count or a
// value outside its enumeration. It carries the allowed set so the message
// can name it.
type UsageError struct {
	Argument string
	Value    string
	Allowed  []string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid %s %q (must be one of: %s)",
		e.Argument, e.Value, strings.Join(e.Allowed, ", "))
}

// NewUsageError creates a new UsageError
func NewUsageError(argument, value string, allowed []string) *UsageError {
	return &UsageError{
		Argument: argument,
		Value:    value,
		Allowed:  allowed,
	}
}

// ManifestError represents a failure reading, parsing, or writing the
// extension manifest.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// NewManifestError creates a new ManifestError
func NewManifestError(path string, err error) *ManifestError {
	return &ManifestError{Path: path, Err: err}
}

// PackageError represents a failure while assembling the output artifact.
type PackageError struct {
	Artifact string
	File     string
	Err      error
}

func (e *PackageError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("packaging %s: adding %s: %v", e.Artifact, e.File, e.Err)
	}
	return fmt.Sprintf("packaging %s: %v", e.Artifact, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

// NewPackageError creates a new PackageError
func NewPackageError(artifact, file string, err error) *PackageError {
	return &PackageError{Artifact: artifact, File: file, Err: err}
}
