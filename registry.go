package cuda

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// Registry owns at most one loaded driver at a time. The driver is loaded
// by the first Get and released when the last Driver obtained from Get is
// closed; the next Get loads it again from scratch.
//
// Most programs use the package-level Get, which goes through a default
// Registry. Separate registries are useful to inject a Loader.
type Registry struct {
	mu      sync.Mutex // serializes loading and final release
	current atomic.Pointer[binding]
	opts    registryOptions
}

// NewRegistry creates a Registry. Nothing is loaded until Get is called.
func NewRegistry(opts ...Option) *Registry {
	o := defaultRegistryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{opts: o}
}

var defaultRegistry = NewRegistry()

// Get returns a handle to the process-wide CUDA driver, loading it on first
// use. Close the returned Driver when done with it.
//
// An error means CUDA is unavailable on this system: either the library
// could not be opened (ErrLibraryNotFound) or it lacks a mandatory entry
// point (ErrMissingSymbol). A failed Get leaves nothing loaded; the next
// call tries again.
//
// Get is safe for concurrent use. Concurrent first calls load the driver
// once and share it.
func Get() (*Driver, error) {
	return defaultRegistry.Get()
}

// Get returns a handle to the registry's driver, loading it if no handle is
// currently open.
func (r *Registry) Get() (*Driver, error) {
	if b := r.current.Load(); b != nil && b.retain() {
		return r.newDriver(b), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b := r.current.Load(); b != nil {
		if b.retain() {
			return r.newDriver(b), nil
		}
		// The last handle was dropped and its release is waiting on mu.
		// Finish it here so the old library is closed before reloading.
		r.current.CompareAndSwap(b, nil)
		_ = b.finalize()
	}

	b, err := load(r.opts.loader, r.opts.goos, r.logger())
	if err != nil {
		return nil, err
	}
	b.refs.Store(1)
	r.current.Store(b)
	return r.newDriver(b), nil
}

// release drops one reference to b and unloads it when none remain.
func (r *Registry) release(b *binding) error {
	if b.refs.Add(-1) != 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current.CompareAndSwap(b, nil)
	return b.finalize()
}

func (r *Registry) newDriver(b *binding) *Driver {
	ref := &reference{reg: r, b: b}
	d := &Driver{b: b, ref: ref}
	d.cleanup = runtime.AddCleanup(d, func(ref *reference) {
		if err := ref.release(); err != nil {
			ref.b.log.Warn("cuda: releasing unreachable driver handle", "err", err)
		}
	}, ref)
	return d
}

func (r *Registry) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// reference is one strong reference held by a Driver. It is kept apart
// from the Driver so the cleanup can run after the Driver is unreachable.
type reference struct {
	reg      *Registry
	b        *binding
	released atomic.Bool
}

func (ref *reference) release() error {
	if !ref.released.CompareAndSwap(false, true) {
		return nil
	}
	return ref.reg.release(ref.b)
}
