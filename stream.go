package cuda

import "runtime"

// StreamCreate creates a stream in the current context.
func (d *Driver) StreamCreate(flags StreamFlags) (Stream, error) {
	defer runtime.KeepAlive(d)
	var s Stream
	err := d.b.fn.cuStreamCreate(&s, flags).Err()
	return s, err
}

// StreamDestroy destroys s once its pending work completes.
func (d *Driver) StreamDestroy(s Stream) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuStreamDestroy(s).Err()
}

// StreamSynchronize blocks until all work on s has completed.
func (d *Driver) StreamSynchronize(s Stream) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuStreamSynchronize(s).Err()
}

// StreamCreateWithPriority creates a stream with the given priority; see
// CtxGetStreamPriorityRange. Optional: returns ErrUnavailable if the
// driver lacks it.
func (d *Driver) StreamCreateWithPriority(flags StreamFlags, priority int32) (Stream, error) {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuStreamCreateWithPriority
	if f == nil {
		return 0, unavailable("cuStreamCreateWithPriority")
	}
	var s Stream
	err := f(&s, flags, priority).Err()
	return s, err
}

// StreamGetPriority returns the priority of s.
// Optional: returns ErrUnavailable if the driver lacks it.
func (d *Driver) StreamGetPriority(s Stream) (int32, error) {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuStreamGetPriority
	if f == nil {
		return 0, unavailable("cuStreamGetPriority")
	}
	var p int32
	err := f(s, &p).Err()
	return p, err
}
