package cuda

import (
	"runtime"
	"unsafe"
)

// Host pointers passed to the copies below must stay valid until the copy
// completes. For the Async variants that means until the stream has been
// synchronized; keep Go memory reachable until then.

// MemAlloc allocates size bytes of device memory.
func (d *Driver) MemAlloc(size uintptr) (DevicePtr, error) {
	defer runtime.KeepAlive(d)
	var p DevicePtr
	err := d.b.fn.cuMemAlloc(&p, size).Err()
	return p, err
}

// MemAllocPitch allocates a pitched 2D region of height rows of
// widthInBytes each. It returns the allocation and the row pitch.
func (d *Driver) MemAllocPitch(widthInBytes, height uintptr, elementSize uint32) (DevicePtr, uintptr, error) {
	defer runtime.KeepAlive(d)
	var (
		p     DevicePtr
		pitch uintptr
	)
	err := d.b.fn.cuMemAllocPitch(&p, &pitch, widthInBytes, height, elementSize).Err()
	return p, pitch, err
}

// MemFree frees device memory from MemAlloc or MemAllocPitch.
func (d *Driver) MemFree(p DevicePtr) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuMemFree(p).Err()
}

// Memcpy copies n bytes between unified addresses.
func (d *Driver) Memcpy(dst, src DevicePtr, n uintptr) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuMemcpy(dst, src, n).Err()
}

// Memcpy2D performs the 2D copy described by c.
func (d *Driver) Memcpy2D(c *Memcpy2D) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuMemcpy2D(c).Err()
}

// Memcpy2DAsync enqueues the 2D copy described by c on s.
func (d *Driver) Memcpy2DAsync(c *Memcpy2D, s Stream) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuMemcpy2DAsync(c, s).Err()
}

// ArrayGetDescriptor returns the format and size of a.
// Optional: returns ErrUnavailable if the driver lacks it.
func (d *Driver) ArrayGetDescriptor(a Array) (ArrayDescriptor, error) {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuArrayGetDescriptor
	if f == nil {
		return ArrayDescriptor{}, unavailable("cuArrayGetDescriptor")
	}
	var desc ArrayDescriptor
	err := f(&desc, a).Err()
	return desc, err
}

// MemcpyAtoA copies n bytes between arrays. Optional.
func (d *Driver) MemcpyAtoA(dst Array, dstOffset uintptr, src Array, srcOffset, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyAtoA
	if f == nil {
		return unavailable("cuMemcpyAtoA")
	}
	return f(dst, dstOffset, src, srcOffset, n).Err()
}

// MemcpyAtoD copies n bytes from an array to device memory. Optional.
func (d *Driver) MemcpyAtoD(dst DevicePtr, src Array, srcOffset, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyAtoD
	if f == nil {
		return unavailable("cuMemcpyAtoD")
	}
	return f(dst, src, srcOffset, n).Err()
}

// MemcpyAtoH copies n bytes from an array to host memory. Optional.
func (d *Driver) MemcpyAtoH(dst unsafe.Pointer, src Array, srcOffset, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyAtoH
	if f == nil {
		return unavailable("cuMemcpyAtoH")
	}
	return f(dst, src, srcOffset, n).Err()
}

// MemcpyAtoHAsync enqueues a copy from an array to host memory. Optional.
func (d *Driver) MemcpyAtoHAsync(dst unsafe.Pointer, src Array, srcOffset, n uintptr, s Stream) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyAtoHAsync
	if f == nil {
		return unavailable("cuMemcpyAtoHAsync")
	}
	return f(dst, src, srcOffset, n, s).Err()
}

// MemcpyDtoA copies n bytes from device memory to an array. Optional.
func (d *Driver) MemcpyDtoA(dst Array, dstOffset uintptr, src DevicePtr, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyDtoA
	if f == nil {
		return unavailable("cuMemcpyDtoA")
	}
	return f(dst, dstOffset, src, n).Err()
}

// MemcpyDtoD copies n bytes between device allocations. Optional.
func (d *Driver) MemcpyDtoD(dst, src DevicePtr, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyDtoD
	if f == nil {
		return unavailable("cuMemcpyDtoD")
	}
	return f(dst, src, n).Err()
}

// MemcpyDtoH copies n bytes from device to host memory. Optional.
func (d *Driver) MemcpyDtoH(dst unsafe.Pointer, src DevicePtr, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyDtoH
	if f == nil {
		return unavailable("cuMemcpyDtoH")
	}
	return f(dst, src, n).Err()
}

// MemcpyDtoHAsync enqueues a copy from device to host memory. Optional.
func (d *Driver) MemcpyDtoHAsync(dst unsafe.Pointer, src DevicePtr, n uintptr, s Stream) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyDtoHAsync
	if f == nil {
		return unavailable("cuMemcpyDtoHAsync")
	}
	return f(dst, src, n, s).Err()
}

// MemcpyHtoA copies n bytes from host memory to an array. Optional.
func (d *Driver) MemcpyHtoA(dst Array, dstOffset uintptr, src unsafe.Pointer, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyHtoA
	if f == nil {
		return unavailable("cuMemcpyHtoA")
	}
	return f(dst, dstOffset, src, n).Err()
}

// MemcpyHtoAAsync enqueues a copy from host memory to an array. Optional.
func (d *Driver) MemcpyHtoAAsync(dst Array, dstOffset uintptr, src unsafe.Pointer, n uintptr, s Stream) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyHtoAAsync
	if f == nil {
		return unavailable("cuMemcpyHtoAAsync")
	}
	return f(dst, dstOffset, src, n, s).Err()
}

// MemcpyHtoD copies n bytes from host to device memory. Optional.
func (d *Driver) MemcpyHtoD(dst DevicePtr, src unsafe.Pointer, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyHtoD
	if f == nil {
		return unavailable("cuMemcpyHtoD")
	}
	return f(dst, src, n).Err()
}

// MemcpyHtoDAsync enqueues a copy from host to device memory. Optional.
func (d *Driver) MemcpyHtoDAsync(dst DevicePtr, src unsafe.Pointer, n uintptr, s Stream) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemcpyHtoDAsync
	if f == nil {
		return unavailable("cuMemcpyHtoDAsync")
	}
	return f(dst, src, n, s).Err()
}

// MemHostGetDevicePointer returns the device address of mapped, pinned host
// memory. flags must be 0. Optional.
func (d *Driver) MemHostGetDevicePointer(host unsafe.Pointer, flags uint32) (DevicePtr, error) {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemHostGetDevicePointer
	if f == nil {
		return 0, unavailable("cuMemHostGetDevicePointer")
	}
	var p DevicePtr
	err := f(&p, host, flags).Err()
	return p, err
}

// MemsetD8 sets n bytes at dst to v.
func (d *Driver) MemsetD8(dst DevicePtr, v uint8, n uintptr) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuMemsetD8(dst, v, n).Err()
}

// MemsetD8Async enqueues setting n bytes at dst to v.
func (d *Driver) MemsetD8Async(dst DevicePtr, v uint8, n uintptr, s Stream) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuMemsetD8Async(dst, v, n, s).Err()
}

// MemsetD16 sets n 16-bit values at dst to v. Optional.
func (d *Driver) MemsetD16(dst DevicePtr, v uint16, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemsetD16
	if f == nil {
		return unavailable("cuMemsetD16")
	}
	return f(dst, v, n).Err()
}

// MemsetD16Async enqueues setting n 16-bit values at dst to v. Optional.
func (d *Driver) MemsetD16Async(dst DevicePtr, v uint16, n uintptr, s Stream) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemsetD16Async
	if f == nil {
		return unavailable("cuMemsetD16Async")
	}
	return f(dst, v, n, s).Err()
}

// MemsetD32 sets n 32-bit values at dst to v. Optional.
func (d *Driver) MemsetD32(dst DevicePtr, v uint32, n uintptr) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemsetD32
	if f == nil {
		return unavailable("cuMemsetD32")
	}
	return f(dst, v, n).Err()
}

// MemsetD32Async enqueues setting n 32-bit values at dst to v. Optional.
func (d *Driver) MemsetD32Async(dst DevicePtr, v uint32, n uintptr, s Stream) error {
	defer runtime.KeepAlive(d)
	f := d.b.fn.cuMemsetD32Async
	if f == nil {
		return unavailable("cuMemsetD32Async")
	}
	return f(dst, v, n, s).Err()
}
