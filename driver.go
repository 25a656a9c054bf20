package cuda

import "runtime"

// Driver is a handle to the loaded CUDA driver. All handles returned by
// concurrent or overlapping Get calls share one loaded library.
//
// Driver is safe for concurrent use. Its entry points must not be called
// after Close.
type Driver struct {
	b   *binding
	ref *reference

	// cleanup releases ref once d is unreachable. Methods that call into
	// the library keep d alive until the call returns.
	cleanup runtime.Cleanup
}

// Close drops this handle's reference to the driver. When the last handle
// is closed the library is unloaded. Close is idempotent.
//
// A Driver that becomes unreachable without Close releases its reference
// when the garbage collector reclaims it.
func (d *Driver) Close() error {
	d.cleanup.Stop()
	return d.ref.release()
}

// Version queries the driver for its CUDA version, encoded as
// 1000*major + 10*minor + patch. It returns 0 if the query fails.
func (d *Driver) Version() int32 {
	defer runtime.KeepAlive(d)
	var v int32
	d.b.fn.cuDriverGetVersion(&v)
	return v
}

// DriverVersion returns the version reported when the driver was loaded.
// It is zero if the query failed at that time.
func (d *Driver) DriverVersion() Version { return d.b.version }

// InitResult returns the error, if any, that cuInit(0) reported while the
// driver was loaded. Loading does not fail on it.
func (d *Driver) InitResult() error { return d.b.initRes.Err() }

// Has reports whether the named entry point is bound. Names are logical,
// without version suffix: "cuMemcpyHtoD", not "cuMemcpyHtoD_v2".
func (d *Driver) Has(symbol string) bool {
	s, ok := d.b.states[symbol]
	return ok && s == SymbolResolved
}

// Symbols returns the resolution status of every catalog entry, in
// resolution order.
func (d *Driver) Symbols() []SymbolStatus {
	out := make([]SymbolStatus, 0, len(criticalSymbols)+len(catalog))
	for _, list := range [][]symbol{criticalSymbols, catalog} {
		for _, s := range list {
			out = append(out, SymbolStatus{
				Name:     s.name,
				Export:   s.exportName(),
				Required: s.required,
				Platform: s.platform,
				State:    d.b.states[s.name],
			})
		}
	}
	return out
}
