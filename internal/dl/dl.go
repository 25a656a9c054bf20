// Package dl opens shared libraries at runtime and binds their exported
// functions to typed Go function variables.
//
// Binding goes through purego, so no cgo toolchain is needed to call into
// the loaded library. On Windows the library is opened with LoadLibrary, on
// Unix-like systems with dlopen.
package dl

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a library cannot be located or opened.
	ErrNotFound = errors.New("dl: library not found")

	// ErrSymbolNotFound is returned when a library does not export a symbol.
	ErrSymbolNotFound = errors.New("dl: symbol not found")

	// ErrClosed is returned by lookups on a closed library.
	ErrClosed = errors.New("dl: library closed")

	// ErrUnsupported is returned on platforms without a dynamic loader.
	ErrUnsupported = errors.New("dl: dynamic loading not supported on this platform")
)

// Lib is an open handle to a dynamically loaded library.
// A Lib is not safe for concurrent Close; lookups may run concurrently.
type Lib struct {
	handle uintptr
	name   string
}

// Open loads the named library. The name is passed to the platform loader
// as-is, so the usual search path rules apply.
func Open(name string) (*Lib, error) {
	h, err := open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return &Lib{handle: h, name: name}, nil
}

// Name returns the name the library was opened with.
func (l *Lib) Name() string { return l.name }

// Lookup returns the address of an exported symbol.
func (l *Lib) Lookup(symbol string) (uintptr, error) {
	if l.handle == 0 {
		return 0, ErrClosed
	}
	addr, err := lookup(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s: %w", ErrSymbolNotFound, symbol, l.name, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, symbol, l.name)
	}
	return addr, nil
}

// Bind resolves symbol and stores a Go function calling it into fptr,
// which must be a non-nil pointer to a variable of func type. fptr is left
// untouched when the symbol cannot be resolved.
//
// Bind panics if fptr is not a pointer to a func, or if the func signature
// uses types the platform calling convention cannot express.
func (l *Lib) Bind(symbol string, fptr any) error {
	addr, err := l.Lookup(symbol)
	if err != nil {
		return err
	}
	return bind(fptr, addr)
}

// Close unloads the library. Closing an already closed Lib is a no-op.
func (l *Lib) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := release(l.handle)
	l.handle = 0
	return err
}
