package cuda

import "runtime"

// CtxCreate creates a context on dev and makes it current on the calling
// OS thread. Callers that rely on the current context should lock the
// goroutine to its thread with runtime.LockOSThread.
func (d *Driver) CtxCreate(flags ContextFlags, dev Device) (Context, error) {
	defer runtime.KeepAlive(d)
	var ctx Context
	err := d.b.fn.cuCtxCreate(&ctx, flags, dev).Err()
	return ctx, err
}

// CtxDestroy destroys a context created with CtxCreate.
func (d *Driver) CtxDestroy(ctx Context) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuCtxDestroy(ctx).Err()
}

// CtxPushCurrent pushes ctx onto the calling thread's context stack.
func (d *Driver) CtxPushCurrent(ctx Context) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuCtxPushCurrent(ctx).Err()
}

// CtxPopCurrent pops the current context off the calling thread's stack.
func (d *Driver) CtxPopCurrent() (Context, error) {
	defer runtime.KeepAlive(d)
	var ctx Context
	err := d.b.fn.cuCtxPopCurrent(&ctx).Err()
	return ctx, err
}

// CtxGetCurrent returns the calling thread's current context.
// Optional: returns ErrUnavailable if the driver lacks it.
func (d *Driver) CtxGetCurrent() (Context, error) {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuCtxGetCurrent
	if f == nil {
		return 0, unavailable("cuCtxGetCurrent")
	}
	var ctx Context
	err := f(&ctx).Err()
	return ctx, err
}

// CtxSetCurrent binds ctx to the calling thread.
// Optional: returns ErrUnavailable if the driver lacks it.
func (d *Driver) CtxSetCurrent(ctx Context) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuCtxSetCurrent
	if f == nil {
		return unavailable("cuCtxSetCurrent")
	}
	return f(ctx).Err()
}

// CtxGetStreamPriorityRange returns the numerical range of stream
// priorities. Lower numbers are higher priorities, so greatest <= least.
func (d *Driver) CtxGetStreamPriorityRange() (least, greatest int32, err error) {
	defer runtime.KeepAlive(d)
	err = d.b.fn.cuCtxGetStreamPriorityRange(&least, &greatest).Err()
	return least, greatest, err
}

// CtxSynchronize blocks until the current context has finished all work.
func (d *Driver) CtxSynchronize() error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuCtxSynchronize().Err()
}
