package cuda

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"
)

var errFakeMissing = errors.New("fake: symbol not exported")

// fakeLoader stands in for the system loader. Every export is bound to a
// function returning zero values (CUDA_SUCCESS) unless it is listed in
// missing or overridden in funcs. Binding a symbol listed in panics
// panics, like purego does for an unsupported signature.
type fakeLoader struct {
	openErr   error
	openDelay time.Duration
	missing   map[string]bool
	panics    map[string]bool
	funcs     map[string]any

	opens  atomic.Int32
	closes atomic.Int32
	live   atomic.Int32
	// overlap is set if two libraries were ever open at once.
	overlap atomic.Bool

	mu        sync.Mutex
	requested []string
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		missing: make(map[string]bool),
		panics:  make(map[string]bool),
		funcs: map[string]any{
			"cuDriverGetVersion": func(v *int32) Result {
				*v = 11020
				return Success
			},
		},
	}
}

func (l *fakeLoader) Open(name string) (Library, error) {
	l.opens.Add(1)
	if l.openDelay > 0 {
		time.Sleep(l.openDelay)
	}
	if l.openErr != nil {
		return nil, l.openErr
	}
	if l.live.Add(1) > 1 {
		l.overlap.Store(true)
	}
	return &fakeLibrary{loader: l, name: name}, nil
}

func (l *fakeLoader) requestedSymbols() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.requested...)
}

type fakeLibrary struct {
	loader *fakeLoader
	name   string
	closed atomic.Bool
}

func (lib *fakeLibrary) Bind(symbol string, fptr any) error {
	l := lib.loader
	l.mu.Lock()
	l.requested = append(l.requested, symbol)
	l.mu.Unlock()

	if l.missing[symbol] {
		return fmt.Errorf("%w: %s", errFakeMissing, symbol)
	}
	if l.panics[symbol] {
		panic("fake: unsupported signature for " + symbol)
	}
	dst := reflect.ValueOf(fptr).Elem()
	if fn, ok := l.funcs[symbol]; ok {
		dst.Set(reflect.ValueOf(fn))
		return nil
	}
	typ := dst.Type()
	dst.Set(reflect.MakeFunc(typ, func([]reflect.Value) []reflect.Value {
		out := make([]reflect.Value, typ.NumOut())
		for i := range out {
			out[i] = reflect.Zero(typ.Out(i))
		}
		return out
	}))
	return nil
}

func (lib *fakeLibrary) Close() error {
	if lib.closed.CompareAndSwap(false, true) {
		lib.loader.live.Add(-1)
		lib.loader.closes.Add(1)
	}
	return nil
}

// withGOOS overrides the platform used to filter platform-specific symbols.
func withGOOS(goos string) Option {
	return func(o *registryOptions) {
		o.goos = goos
	}
}

// allExports returns the export names of every catalog entry available on
// goos.
func allExports(goos string) []string {
	var out []string
	for _, list := range [][]symbol{criticalSymbols, catalog} {
		for _, s := range list {
			if s.platform == "" || s.platform == goos {
				out = append(out, s.exportName())
			}
		}
	}
	return out
}
