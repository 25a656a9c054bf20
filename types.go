package cuda

import (
	"fmt"
	"unsafe"
)

// Raw driver handle types. They are opaque values owned by the driver;
// this package never dereferences them.
type (
	// Device is a CUdevice ordinal.
	Device int32

	// Context is a CUcontext handle.
	Context uintptr

	// Stream is a CUstream handle. The zero value is the legacy default stream.
	Stream uintptr

	// Array is a CUarray handle.
	Array uintptr

	// GraphicsResource is a CUgraphicsResource handle.
	GraphicsResource uintptr

	// DevicePtr is a CUdeviceptr, an address in device memory.
	DevicePtr uint64
)

// LUID is the locally unique identifier of a device on Windows.
type LUID [8]byte

// UUID is the universally unique identifier of a device.
type UUID [16]byte

// String formats u in the canonical 8-4-4-4-12 form.
func (u UUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}

// ContextFlags is the flags argument of cuCtxCreate and
// cuDevicePrimaryCtxSetFlags.
type ContextFlags uint32

const (
	ContextSchedAuto         ContextFlags = 0x00
	ContextSchedSpin         ContextFlags = 0x01
	ContextSchedYield        ContextFlags = 0x02
	ContextSchedBlockingSync ContextFlags = 0x04
	ContextMapHost           ContextFlags = 0x08
	ContextLmemResizeToMax   ContextFlags = 0x10
)

// StreamFlags is the flags argument of cuStreamCreate.
type StreamFlags uint32

const (
	StreamDefault     StreamFlags = 0x0
	StreamNonBlocking StreamFlags = 0x1
)

// GraphicsRegisterFlags is the flags argument of the Direct3D resource
// registration entry points.
type GraphicsRegisterFlags uint32

const (
	GraphicsRegisterNone             GraphicsRegisterFlags = 0x00
	GraphicsRegisterReadOnly         GraphicsRegisterFlags = 0x01
	GraphicsRegisterWriteDiscard     GraphicsRegisterFlags = 0x02
	GraphicsRegisterSurfaceLoadStore GraphicsRegisterFlags = 0x04
	GraphicsRegisterTextureGather    GraphicsRegisterFlags = 0x08
)

// MemoryType selects the kind of memory on either side of a 2D copy.
type MemoryType uint32

const (
	MemoryTypeHost    MemoryType = 0x01
	MemoryTypeDevice  MemoryType = 0x02
	MemoryTypeArray   MemoryType = 0x03
	MemoryTypeUnified MemoryType = 0x04
)

// ArrayFormat is the element format of a CUDA array.
type ArrayFormat uint32

const (
	ArrayFormatUint8   ArrayFormat = 0x01
	ArrayFormatUint16  ArrayFormat = 0x02
	ArrayFormatUint32  ArrayFormat = 0x03
	ArrayFormatInt8    ArrayFormat = 0x08
	ArrayFormatInt16   ArrayFormat = 0x09
	ArrayFormatInt32   ArrayFormat = 0x0a
	ArrayFormatHalf    ArrayFormat = 0x10
	ArrayFormatFloat32 ArrayFormat = 0x20
)

// ArrayDescriptor mirrors CUDA_ARRAY_DESCRIPTOR.
type ArrayDescriptor struct {
	Width       uintptr
	Height      uintptr
	Format      ArrayFormat
	NumChannels uint32
}

// Memcpy2D mirrors CUDA_MEMCPY2D. Field order and widths match the C
// layout; Go inserts the same padding after the MemoryType fields.
type Memcpy2D struct {
	SrcXInBytes   uintptr
	SrcY          uintptr
	SrcMemoryType MemoryType
	SrcHost       unsafe.Pointer
	SrcDevice     DevicePtr
	SrcArray      Array
	SrcPitch      uintptr

	DstXInBytes   uintptr
	DstY          uintptr
	DstMemoryType MemoryType
	DstHost       unsafe.Pointer
	DstDevice     DevicePtr
	DstArray      Array
	DstPitch      uintptr

	WidthInBytes uintptr
	Height       uintptr
}
