package cuda

import (
	"bytes"
	"math"
	"runtime"
)

// deviceNameLen is the buffer size passed to cuDeviceGetName.
const deviceNameLen = 256

// DeviceGetCount returns the number of CUDA capable devices. Optional.
func (d *Driver) DeviceGetCount() (int, error) {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuDeviceGetCount
	if f == nil {
		return 0, unavailable("cuDeviceGetCount")
	}
	var n int32
	if err := f(&n).Err(); err != nil {
		return 0, err
	}
	return int(n), nil
}

// DeviceGet returns the device handle for an ordinal in [0, DeviceGetCount).
// An ordinal outside the int32 range yields ErrorInvalidValue. Optional.
func (d *Driver) DeviceGet(ordinal int) (Device, error) {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuDeviceGet
	if f == nil {
		return 0, unavailable("cuDeviceGet")
	}
	if ordinal < math.MinInt32 || ordinal > math.MaxInt32 {
		return 0, ErrorInvalidValue
	}
	var dev Device
	err := f(&dev, int32(ordinal)).Err()
	return dev, err
}

// DeviceGetName returns the device's marketing name.
func (d *Driver) DeviceGetName(dev Device) (string, error) {
	defer runtime.KeepAlive(d)
	buf := make([]byte, deviceNameLen)
	if err := d.b.fn.cuDeviceGetName(&buf[0], int32(len(buf)), dev).Err(); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

// DeviceGetLuid returns the device's LUID and node mask. The driver only
// supports this on Windows; elsewhere it reports an error.
func (d *Driver) DeviceGetLuid(dev Device) (LUID, uint32, error) {
	defer runtime.KeepAlive(d)
	var (
		luid LUID
		mask uint32
	)
	err := d.b.fn.cuDeviceGetLuid(&luid, &mask, dev).Err()
	return luid, mask, err
}

// DeviceGetUuid returns the device's UUID.
func (d *Driver) DeviceGetUuid(dev Device) (UUID, error) {
	defer runtime.KeepAlive(d)
	var uuid UUID
	err := d.b.fn.cuDeviceGetUuid(&uuid, dev).Err()
	return uuid, err
}

// DevicePrimaryCtxRetain retains the device's primary context, creating it
// if needed. Each call must be balanced by DevicePrimaryCtxRelease.
func (d *Driver) DevicePrimaryCtxRetain(dev Device) (Context, error) {
	defer runtime.KeepAlive(d)
	var ctx Context
	err := d.b.fn.cuDevicePrimaryCtxRetain(&ctx, dev).Err()
	return ctx, err
}

// DevicePrimaryCtxRelease releases a reference taken by DevicePrimaryCtxRetain.
func (d *Driver) DevicePrimaryCtxRelease(dev Device) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuDevicePrimaryCtxRelease(dev).Err()
}

// DevicePrimaryCtxSetFlags sets the flags the primary context is created
// with. Optional: returns ErrUnavailable if the driver lacks it.
func (d *Driver) DevicePrimaryCtxSetFlags(dev Device, flags ContextFlags) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuDevicePrimaryCtxSetFlags
	if f == nil {
		return unavailable("cuDevicePrimaryCtxSetFlags")
	}
	return f(dev, flags).Err()
}
