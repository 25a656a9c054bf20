package cuda

import "github.com/gogpu/cuda/internal/dl"

// Library is an opened shared library.
type Library interface {
	// Bind resolves the exported symbol and stores a callable of the
	// pointed-to func type into fptr. On failure fptr is left untouched.
	Bind(symbol string, fptr any) error

	// Close releases the library handle.
	Close() error
}

// Loader opens shared libraries by name.
type Loader interface {
	Open(name string) (Library, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc func(name string) (Library, error)

// Open calls f(name).
func (f LoaderFunc) Open(name string) (Library, error) { return f(name) }

// SystemLoader opens libraries through the platform dynamic loader.
var SystemLoader Loader = LoaderFunc(openSystem)

func openSystem(name string) (Library, error) {
	lib, err := dl.Open(name)
	if err != nil {
		return nil, err
	}
	return lib, nil
}
