package cuda

import "unsafe"

// functions holds one typed field per driver entry point. Fields of
// optional entry points stay nil when the driver does not export them.
type functions struct {
	// Initialization and version management.
	cuInit             func(flags uint32) Result
	cuDriverGetVersion func(version *int32) Result

	// Device management.
	cuDeviceGetCount func(count *int32) Result
	cuDeviceGet      func(device *Device, ordinal int32) Result
	cuDeviceGetName  func(name *byte, length int32, dev Device) Result
	cuDeviceGetLuid  func(luid *LUID, deviceNodeMask *uint32, dev Device) Result
	cuDeviceGetUuid  func(uuid *UUID, dev Device) Result

	// Primary context management.
	cuDevicePrimaryCtxRetain   func(ctx *Context, dev Device) Result
	cuDevicePrimaryCtxRelease  func(dev Device) Result
	cuDevicePrimaryCtxSetFlags func(dev Device, flags ContextFlags) Result

	// Context management.
	cuCtxCreate                 func(ctx *Context, flags ContextFlags, dev Device) Result
	cuCtxDestroy                func(ctx Context) Result
	cuCtxPushCurrent            func(ctx Context) Result
	cuCtxPopCurrent             func(ctx *Context) Result
	cuCtxGetCurrent             func(ctx *Context) Result
	cuCtxSetCurrent             func(ctx Context) Result
	cuCtxGetStreamPriorityRange func(least, greatest *int32) Result
	cuCtxSynchronize            func() Result

	// Memory management.
	cuMemAlloc                func(dptr *DevicePtr, size uintptr) Result
	cuMemAllocPitch           func(dptr *DevicePtr, pitch *uintptr, width, height uintptr, elementSize uint32) Result
	cuMemFree                 func(dptr DevicePtr) Result
	cuMemcpy                  func(dst, src DevicePtr, n uintptr) Result
	cuMemcpy2D                func(copy *Memcpy2D) Result
	cuMemcpy2DAsync           func(copy *Memcpy2D, stream Stream) Result
	cuArrayGetDescriptor      func(desc *ArrayDescriptor, array Array) Result
	cuMemcpyAtoA              func(dst Array, dstOffset uintptr, src Array, srcOffset, n uintptr) Result
	cuMemcpyAtoD              func(dst DevicePtr, src Array, srcOffset, n uintptr) Result
	cuMemcpyAtoH              func(dst unsafe.Pointer, src Array, srcOffset, n uintptr) Result
	cuMemcpyAtoHAsync         func(dst unsafe.Pointer, src Array, srcOffset, n uintptr, stream Stream) Result
	cuMemcpyDtoA              func(dst Array, dstOffset uintptr, src DevicePtr, n uintptr) Result
	cuMemcpyDtoD              func(dst, src DevicePtr, n uintptr) Result
	cuMemcpyDtoH              func(dst unsafe.Pointer, src DevicePtr, n uintptr) Result
	cuMemcpyDtoHAsync         func(dst unsafe.Pointer, src DevicePtr, n uintptr, stream Stream) Result
	cuMemcpyHtoA              func(dst Array, dstOffset uintptr, src unsafe.Pointer, n uintptr) Result
	cuMemcpyHtoAAsync         func(dst Array, dstOffset uintptr, src unsafe.Pointer, n uintptr, stream Stream) Result
	cuMemcpyHtoD              func(dst DevicePtr, src unsafe.Pointer, n uintptr) Result
	cuMemcpyHtoDAsync         func(dst DevicePtr, src unsafe.Pointer, n uintptr, stream Stream) Result
	cuMemHostGetDevicePointer func(dptr *DevicePtr, host unsafe.Pointer, flags uint32) Result
	cuMemsetD8                func(dst DevicePtr, value uint8, n uintptr) Result
	cuMemsetD8Async           func(dst DevicePtr, value uint8, n uintptr, stream Stream) Result
	cuMemsetD16               func(dst DevicePtr, value uint16, n uintptr) Result
	cuMemsetD16Async          func(dst DevicePtr, value uint16, n uintptr, stream Stream) Result
	cuMemsetD32               func(dst DevicePtr, value uint32, n uintptr) Result
	cuMemsetD32Async          func(dst DevicePtr, value uint32, n uintptr, stream Stream) Result

	// Stream management.
	cuStreamCreate             func(stream *Stream, flags StreamFlags) Result
	cuStreamDestroy            func(stream Stream) Result
	cuStreamSynchronize        func(stream Stream) Result
	cuStreamCreateWithPriority func(stream *Stream, flags StreamFlags, priority int32) Result
	cuStreamGetPriority        func(stream Stream, priority *int32) Result

	// Graphics interoperability.
	cuGraphicsMapResources              func(count uint32, resources *GraphicsResource, stream Stream) Result
	cuGraphicsSubResourceGetMappedArray func(array *Array, resource GraphicsResource, arrayIndex, mipLevel uint32) Result
	cuGraphicsUnmapResources            func(count uint32, resources *GraphicsResource, stream Stream) Result
	cuGraphicsUnregisterResource        func(resource GraphicsResource) Result

	// Direct3D interoperability, Windows only.
	cuD3D10GetDevice                func(dev *Device, adapter unsafe.Pointer) Result
	cuGraphicsD3D10RegisterResource func(resource *GraphicsResource, d3dResource unsafe.Pointer, flags GraphicsRegisterFlags) Result
	cuD3D11GetDevice                func(dev *Device, adapter unsafe.Pointer) Result
	cuGraphicsD3D11RegisterResource func(resource *GraphicsResource, d3dResource unsafe.Pointer, flags GraphicsRegisterFlags) Result
}

// versionSuffix is appended to the logical name of entry points whose ABI
// was revised by the driver.
const versionSuffix = "_v2"

// symbol describes how one entry point is resolved.
type symbol struct {
	name     string
	suffix   string
	required bool
	platform string // GOOS the entry point exists on; empty for all
	field    func(*functions) any
}

// exportName is the name looked up in the library.
func (s symbol) exportName() string { return s.name + s.suffix }

func mandatory(name string, field func(*functions) any) symbol {
	return symbol{name: name, required: true, field: field}
}

func optional(name string, field func(*functions) any) symbol {
	return symbol{name: name, field: field}
}

func (s symbol) v2() symbol {
	s.suffix = versionSuffix
	return s
}

func (s symbol) only(goos string) symbol {
	s.platform = goos
	return s
}

// criticalSymbols are resolved before anything else; the version query
// and cuInit depend on them.
var criticalSymbols = []symbol{
	mandatory("cuInit", func(f *functions) any { return &f.cuInit }),
	mandatory("cuDriverGetVersion", func(f *functions) any { return &f.cuDriverGetVersion }),
}

// catalog lists the remaining entry points in resolution order.
var catalog = []symbol{
	// Device management
	optional("cuDeviceGetCount", func(f *functions) any { return &f.cuDeviceGetCount }),
	optional("cuDeviceGet", func(f *functions) any { return &f.cuDeviceGet }),
	mandatory("cuDeviceGetName", func(f *functions) any { return &f.cuDeviceGetName }),
	mandatory("cuDeviceGetLuid", func(f *functions) any { return &f.cuDeviceGetLuid }),
	mandatory("cuDeviceGetUuid", func(f *functions) any { return &f.cuDeviceGetUuid }),

	// Primary context management
	mandatory("cuDevicePrimaryCtxRetain", func(f *functions) any { return &f.cuDevicePrimaryCtxRetain }),
	mandatory("cuDevicePrimaryCtxRelease", func(f *functions) any { return &f.cuDevicePrimaryCtxRelease }).v2(),
	optional("cuDevicePrimaryCtxSetFlags", func(f *functions) any { return &f.cuDevicePrimaryCtxSetFlags }).v2(),

	// Context management
	mandatory("cuCtxCreate", func(f *functions) any { return &f.cuCtxCreate }).v2(),
	mandatory("cuCtxDestroy", func(f *functions) any { return &f.cuCtxDestroy }).v2(),
	mandatory("cuCtxPushCurrent", func(f *functions) any { return &f.cuCtxPushCurrent }).v2(),
	mandatory("cuCtxPopCurrent", func(f *functions) any { return &f.cuCtxPopCurrent }).v2(),
	optional("cuCtxGetCurrent", func(f *functions) any { return &f.cuCtxGetCurrent }),
	optional("cuCtxSetCurrent", func(f *functions) any { return &f.cuCtxSetCurrent }),
	mandatory("cuCtxGetStreamPriorityRange", func(f *functions) any { return &f.cuCtxGetStreamPriorityRange }),
	mandatory("cuCtxSynchronize", func(f *functions) any { return &f.cuCtxSynchronize }),

	// Memory management
	mandatory("cuMemAlloc", func(f *functions) any { return &f.cuMemAlloc }).v2(),
	mandatory("cuMemAllocPitch", func(f *functions) any { return &f.cuMemAllocPitch }).v2(),
	mandatory("cuMemFree", func(f *functions) any { return &f.cuMemFree }).v2(),
	mandatory("cuMemcpy", func(f *functions) any { return &f.cuMemcpy }),
	mandatory("cuMemcpy2D", func(f *functions) any { return &f.cuMemcpy2D }).v2(),
	mandatory("cuMemcpy2DAsync", func(f *functions) any { return &f.cuMemcpy2DAsync }).v2(),
	optional("cuArrayGetDescriptor", func(f *functions) any { return &f.cuArrayGetDescriptor }).v2(),
	optional("cuMemcpyAtoA", func(f *functions) any { return &f.cuMemcpyAtoA }).v2(),
	optional("cuMemcpyAtoD", func(f *functions) any { return &f.cuMemcpyAtoD }).v2(),
	optional("cuMemcpyAtoH", func(f *functions) any { return &f.cuMemcpyAtoH }).v2(),
	optional("cuMemcpyAtoHAsync", func(f *functions) any { return &f.cuMemcpyAtoHAsync }).v2(),
	optional("cuMemcpyDtoA", func(f *functions) any { return &f.cuMemcpyDtoA }).v2(),
	optional("cuMemcpyDtoD", func(f *functions) any { return &f.cuMemcpyDtoD }).v2(),
	optional("cuMemcpyDtoH", func(f *functions) any { return &f.cuMemcpyDtoH }).v2(),
	optional("cuMemcpyDtoHAsync", func(f *functions) any { return &f.cuMemcpyDtoHAsync }).v2(),
	optional("cuMemcpyHtoA", func(f *functions) any { return &f.cuMemcpyHtoA }).v2(),
	optional("cuMemcpyHtoAAsync", func(f *functions) any { return &f.cuMemcpyHtoAAsync }).v2(),
	optional("cuMemcpyHtoD", func(f *functions) any { return &f.cuMemcpyHtoD }).v2(),
	optional("cuMemcpyHtoDAsync", func(f *functions) any { return &f.cuMemcpyHtoDAsync }).v2(),
	optional("cuMemHostGetDevicePointer", func(f *functions) any { return &f.cuMemHostGetDevicePointer }).v2(),
	mandatory("cuMemsetD8", func(f *functions) any { return &f.cuMemsetD8 }).v2(),
	mandatory("cuMemsetD8Async", func(f *functions) any { return &f.cuMemsetD8Async }),
	optional("cuMemsetD16", func(f *functions) any { return &f.cuMemsetD16 }).v2(),
	optional("cuMemsetD16Async", func(f *functions) any { return &f.cuMemsetD16Async }),
	optional("cuMemsetD32", func(f *functions) any { return &f.cuMemsetD32 }).v2(),
	optional("cuMemsetD32Async", func(f *functions) any { return &f.cuMemsetD32Async }),

	// Stream management
	mandatory("cuStreamCreate", func(f *functions) any { return &f.cuStreamCreate }),
	mandatory("cuStreamDestroy", func(f *functions) any { return &f.cuStreamDestroy }).v2(),
	mandatory("cuStreamSynchronize", func(f *functions) any { return &f.cuStreamSynchronize }),
	optional("cuStreamCreateWithPriority", func(f *functions) any { return &f.cuStreamCreateWithPriority }),
	optional("cuStreamGetPriority", func(f *functions) any { return &f.cuStreamGetPriority }),

	// Graphics interoperability
	mandatory("cuGraphicsMapResources", func(f *functions) any { return &f.cuGraphicsMapResources }),
	mandatory("cuGraphicsSubResourceGetMappedArray", func(f *functions) any { return &f.cuGraphicsSubResourceGetMappedArray }),
	mandatory("cuGraphicsUnmapResources", func(f *functions) any { return &f.cuGraphicsUnmapResources }),
	mandatory("cuGraphicsUnregisterResource", func(f *functions) any { return &f.cuGraphicsUnregisterResource }),

	// Direct3D 10 interoperability
	mandatory("cuD3D10GetDevice", func(f *functions) any { return &f.cuD3D10GetDevice }).only("windows"),
	optional("cuGraphicsD3D10RegisterResource", func(f *functions) any { return &f.cuGraphicsD3D10RegisterResource }).only("windows"),

	// Direct3D 11 interoperability
	mandatory("cuD3D11GetDevice", func(f *functions) any { return &f.cuD3D11GetDevice }).only("windows"),
	optional("cuGraphicsD3D11RegisterResource", func(f *functions) any { return &f.cuGraphicsD3D11RegisterResource }).only("windows"),
}

// SymbolState is the outcome of resolving one entry point.
type SymbolState uint8

const (
	// SymbolResolved means the entry point is bound and callable.
	SymbolResolved SymbolState = iota

	// SymbolMissing means an optional entry point was not exported.
	SymbolMissing

	// SymbolSkipped means the entry point does not exist on this platform
	// and was not looked up.
	SymbolSkipped
)

func (s SymbolState) String() string {
	switch s {
	case SymbolResolved:
		return "resolved"
	case SymbolMissing:
		return "missing"
	case SymbolSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SymbolStatus describes how one catalog entry was resolved.
type SymbolStatus struct {
	Name     string // logical name
	Export   string // name looked up in the library
	Required bool
	Platform string
	State    SymbolState
}
