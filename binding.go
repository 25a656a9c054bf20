package cuda

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

var errNilLibrary = errors.New("cuda: loader returned a nil library")

// binding is the loaded driver: the library handle and its resolved entry
// points. Everything except refs is immutable once load returns.
type binding struct {
	lib     Library
	fn      functions
	states  map[string]SymbolState
	version Version
	initRes Result
	log     *slog.Logger

	refs      atomic.Int64
	closeOnce sync.Once
	closeErr  error
}

// load opens the driver library and resolves the catalog. Symbols qualified
// with a platform other than goos are skipped. On error nothing stays open.
func load(loader Loader, goos string, log *slog.Logger) (b *binding, err error) {
	log.Debug("cuda: initializing", "library", LibraryName)

	lib, err := loader.Open(LibraryName)
	if err != nil {
		log.Error("cuda: failed to open driver library", "library", LibraryName, "err", err)
		return nil, &LibraryError{Library: LibraryName, Err: err}
	}
	if lib == nil {
		log.Error("cuda: loader returned no library", "library", LibraryName)
		return nil, &LibraryError{Library: LibraryName, Err: errNilLibrary}
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, lib.Close())
		}
	}()

	b = &binding{
		lib:    lib,
		states: make(map[string]SymbolState, len(criticalSymbols)+len(catalog)),
		log:    log,
	}

	if err = b.resolve(criticalSymbols, goos); err != nil {
		return nil, err
	}

	var v int32
	if r := b.fn.cuDriverGetVersion(&v); r == Success {
		b.version = ParseVersion(v)
		log.Info("cuda: driver reported CUDA version", "version", b.version.String())
	} else {
		log.Warn("cuda: failed to query driver for version", "result", r.Name())
	}

	if err = b.resolve(catalog, goos); err != nil {
		return nil, err
	}

	// A failed cuInit does not fail loading; callers see the driver's error
	// from their first real call, or from InitResult.
	b.initRes = b.fn.cuInit(0)
	if b.initRes != Success {
		log.Warn("cuda: cuInit failed", "result", b.initRes.Name())
	}

	log.Debug("cuda: initialized", "library", LibraryName)
	return b, nil
}

// resolve binds every symbol in order. It stops at the first mandatory
// symbol that cannot be bound.
func (b *binding) resolve(symbols []symbol, goos string) error {
	for _, s := range symbols {
		if s.platform != "" && s.platform != goos {
			b.states[s.name] = SymbolSkipped
			continue
		}
		if err := bind(b.lib, s, &b.fn); err != nil {
			if s.required {
				b.log.Error("cuda: failed to load symbol", "symbol", s.name, "library", LibraryName, "err", err)
				return &MissingSymbolError{Symbol: s.name, Resolved: s.exportName(), Library: LibraryName, Err: err}
			}
			b.log.Warn("cuda: loading of optional symbol failed", "symbol", s.name, "err", err)
			b.states[s.name] = SymbolMissing
			continue
		}
		b.states[s.name] = SymbolResolved
	}
	return nil
}

// bind resolves s into fn. A panic from the library, such as an
// unsupported signature, is reported as a failed lookup.
func bind(lib Library, s symbol, fn *functions) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cuda: binding %s: %v", s.exportName(), r)
		}
	}()
	return lib.Bind(s.exportName(), s.field(fn))
}

// retain adds a reference unless the count already dropped to zero.
func (b *binding) retain() bool {
	for {
		n := b.refs.Load()
		if n <= 0 {
			return false
		}
		if b.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// finalize closes the library exactly once.
func (b *binding) finalize() error {
	b.closeOnce.Do(func() {
		b.log.Debug("cuda: finalizing", "library", LibraryName)
		b.closeErr = b.lib.Close()
	})
	return b.closeErr
}
