package types

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// ErrUnsupportedFormat is returned when a file format cannot be read or
// written by the converter. Legacy BIFF .xls workbooks can be read but not
// written.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// SelectionReason tells why a selection was rejected.
type SelectionReason int

const (
	// NoFiles means no file was selected at all.
	NoFiles SelectionReason = iota + 1

	// ModeMismatch means no selected file matches the conversion mode.
	ModeMismatch
)

// SelectionError is returned when the file selection cannot be converted.
type SelectionError struct {
	Reason SelectionReason
}

func (e *SelectionError) Error() string {
	if e.Reason == ModeMismatch {
		return "selected files are not in line with the conversion mode"
	}
	return "no files selected"
}

// Code returns the user-facing error code.
func (e *SelectionError) Code() string {
	if e.Reason == ModeMismatch {
		return "002"
	}
	return "001"
}

// DestinationError is returned when no destination directory is set.
type DestinationError struct{}

func (e *DestinationError) Error() string {
	return "no destination folder selected"
}

// Code returns the user-facing error code.
func (e *DestinationError) Code() string {
	return "003"
}

// ConfigurationError is returned when a selected label has no entry in its
// option table.
type ConfigurationError struct {
	Category string
	Label    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown %s option %q", e.Category, e.Label)
}

// UnavailableModeError is returned when a conversion mode is listed in the
// option table but cannot be carried out.
type UnavailableModeError struct {
	Label string
	Err   error
}

func (e *UnavailableModeError) Error() string {
	return fmt.Sprintf("conversion mode %q is not available: %v", e.Label, e.Err)
}

func (e *UnavailableModeError) Unwrap() error {
	return e.Err
}

// Conversion stages reported by ConversionError.
const (
	StageRead  = "read"
	StageWrite = "write"
)

// ConversionError describes why a single file could not be converted.
type ConversionError struct {
	Path  string
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
