package cuda

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrLibraryNotFound is returned by Get when the driver library cannot
	// be opened. CUDA is unavailable on this system.
	ErrLibraryNotFound = errors.New("cuda: driver library not found")

	// ErrMissingSymbol is returned by Get when the driver library lacks a
	// mandatory entry point.
	ErrMissingSymbol = errors.New("cuda: mandatory symbol missing")

	// ErrUnavailable is returned when calling an optional entry point the
	// driver does not export.
	ErrUnavailable = errors.New("cuda: entry point not available")
)

// LibraryError reports that the driver library could not be opened.
type LibraryError struct {
	Library string
	Err     error
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("cuda: failed to open '%s': %v", e.Library, e.Err)
}

// Unwrap returns ErrLibraryNotFound and the loader error.
func (e *LibraryError) Unwrap() []error {
	return []error{ErrLibraryNotFound, e.Err}
}

// MissingSymbolError reports a mandatory entry point that could not be
// resolved. Symbol is the logical name; Resolved is the exported name that
// was looked up, which carries the version suffix where one applies.
type MissingSymbolError struct {
	Symbol   string
	Resolved string
	Library  string
	Err      error
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("cuda: failed to load '%s' from '%s'", e.Symbol, e.Library)
}

// Unwrap returns ErrMissingSymbol and the loader error.
func (e *MissingSymbolError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingSymbol}
	}
	return []error{ErrMissingSymbol, e.Err}
}

func unavailable(symbol string) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, symbol)
}
