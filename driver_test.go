package cuda

import (
	"bytes"
	"log/slog"
	"math"
	"strconv"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFake(t *testing.T, fl *fakeLoader, opts ...Option) *Driver {
	t.Helper()
	opts = append([]Option{WithLoader(fl), withGOOS("linux")}, opts...)
	d, err := NewRegistry(opts...).Get()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestVersionQueryFailure(t *testing.T) {
	fl := newFakeLoader()
	fl.funcs["cuDriverGetVersion"] = func(v *int32) Result { return ErrorNotInitialized }

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := openFake(t, fl, WithLogger(log))

	assert.True(t, d.DriverVersion().IsZero())
	assert.EqualValues(t, 0, d.Version())
	assert.Contains(t, buf.String(), "failed to query driver for version")
}

func TestVersionRequeries(t *testing.T) {
	fl := newFakeLoader()
	calls := 0
	fl.funcs["cuDriverGetVersion"] = func(v *int32) Result {
		calls++
		*v = 12000 + int32(calls)*10
		return Success
	}
	d := openFake(t, fl)

	assert.Equal(t, "12.1.0", d.DriverVersion().String())
	assert.EqualValues(t, 12020, d.Version())
	assert.EqualValues(t, 12030, d.Version())
	assert.Equal(t, "12.1.0", d.DriverVersion().String(), "cached version does not change")
}

func TestVersionLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	openFake(t, newFakeLoader(), WithLogger(log))

	assert.Contains(t, buf.String(), "version=11.2.0")
}

func TestInitCalledLast(t *testing.T) {
	fl := newFakeLoader()
	var (
		flags     uint32 = 42
		boundAtIn int
	)
	fl.funcs["cuInit"] = func(f uint32) Result {
		flags = f
		boundAtIn = len(fl.requestedSymbols())
		return Success
	}
	openFake(t, fl)

	assert.EqualValues(t, 0, flags)
	assert.Equal(t, len(allExports("linux")), boundAtIn)
}

func TestInitFailureNotFatal(t *testing.T) {
	fl := newFakeLoader()
	fl.funcs["cuInit"] = func(uint32) Result { return ErrorNoDevice }

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	d := openFake(t, fl, WithLogger(log))

	assert.ErrorIs(t, d.InitResult(), ErrorNoDevice)
	assert.Contains(t, buf.String(), "CUDA_ERROR_NO_DEVICE")
}

func TestDeviceQueries(t *testing.T) {
	fl := newFakeLoader()
	fl.funcs["cuDeviceGetCount"] = func(n *int32) Result {
		*n = 2
		return Success
	}
	fl.funcs["cuDeviceGet"] = func(dev *Device, ordinal int32) Result {
		*dev = Device(ordinal + 10)
		return Success
	}
	fl.funcs["cuDeviceGetName"] = func(name *byte, length int32, dev Device) Result {
		buf := unsafe.Slice(name, length)
		copy(buf, "NVIDIA Test GPU\x00garbage")
		return Success
	}
	fl.funcs["cuDeviceGetUuid"] = func(uuid *UUID, dev Device) Result {
		uuid[0] = byte(dev)
		return Success
	}
	fl.funcs["cuDeviceGetLuid"] = func(luid *LUID, mask *uint32, dev Device) Result {
		return ErrorNotSupported
	}
	d := openFake(t, fl)

	n, err := d.DeviceGetCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dev, err := d.DeviceGet(1)
	require.NoError(t, err)
	assert.Equal(t, Device(11), dev)

	name, err := d.DeviceGetName(dev)
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA Test GPU", name)

	uuid, err := d.DeviceGetUuid(dev)
	require.NoError(t, err)
	assert.Equal(t, byte(11), uuid[0])

	_, _, err = d.DeviceGetLuid(dev)
	assert.ErrorIs(t, err, ErrorNotSupported)
}

func TestDeviceEnumerationOptional(t *testing.T) {
	fl := newFakeLoader()
	fl.missing["cuDeviceGetCount"] = true
	fl.missing["cuDeviceGet"] = true
	d := openFake(t, fl)

	assert.False(t, d.Has("cuDeviceGetCount"))
	_, err := d.DeviceGetCount()
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = d.DeviceGet(0)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDeviceGetOrdinalRange(t *testing.T) {
	if strconv.IntSize == 32 {
		t.Skip("int is 32 bits wide")
	}
	fl := newFakeLoader()
	called := false
	fl.funcs["cuDeviceGet"] = func(dev *Device, ordinal int32) Result {
		called = true
		return Success
	}
	d := openFake(t, fl)

	big := math.MaxInt32
	big++
	_, err := d.DeviceGet(big)
	assert.ErrorIs(t, err, ErrorInvalidValue)
	assert.False(t, called, "out of range ordinal must not reach the driver")

	_, err = d.DeviceGet(math.MaxInt32)
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestDriverErrorsPropagate(t *testing.T) {
	fl := newFakeLoader()
	fl.funcs["cuMemAlloc_v2"] = func(p *DevicePtr, size uintptr) Result { return ErrorOutOfMemory }
	fl.funcs["cuCtxSynchronize"] = func() Result { return ErrorInvalidContext }
	d := openFake(t, fl)

	p, err := d.MemAlloc(1 << 20)
	assert.ErrorIs(t, err, ErrorOutOfMemory)
	assert.Zero(t, p)

	var res Result
	require.ErrorAs(t, d.CtxSynchronize(), &res)
	assert.Equal(t, ErrorInvalidContext, res)
}

func TestMemoryCalls(t *testing.T) {
	fl := newFakeLoader()
	fl.funcs["cuMemAllocPitch_v2"] = func(p *DevicePtr, pitch *uintptr, width, height uintptr, elem uint32) Result {
		*p = 0x1000
		*pitch = (width + 255) &^ 255
		return Success
	}
	var copied Memcpy2D
	fl.funcs["cuMemcpy2D_v2"] = func(c *Memcpy2D) Result {
		copied = *c
		return Success
	}
	var src []byte
	fl.funcs["cuMemcpyHtoD_v2"] = func(dst DevicePtr, p unsafe.Pointer, n uintptr) Result {
		src = unsafe.Slice((*byte)(p), n)
		return Success
	}
	d := openFake(t, fl)

	p, pitch, err := d.MemAllocPitch(100, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, DevicePtr(0x1000), p)
	assert.Equal(t, uintptr(256), pitch)

	require.NoError(t, d.Memcpy2D(&Memcpy2D{DstDevice: p, DstPitch: pitch, WidthInBytes: 100, Height: 4}))
	assert.Equal(t, uintptr(256), copied.DstPitch)

	data := []byte{1, 2, 3}
	require.NoError(t, d.MemcpyHtoD(p, unsafe.Pointer(&data[0]), uintptr(len(data))))
	assert.Equal(t, data, src)

	require.NoError(t, d.MemsetD8(p, 0, 16))
	require.NoError(t, d.MemFree(p))
}

func TestContextAndStreamCalls(t *testing.T) {
	fl := newFakeLoader()
	fl.funcs["cuCtxCreate_v2"] = func(ctx *Context, flags ContextFlags, dev Device) Result {
		*ctx = Context(0xc0)
		return Success
	}
	fl.funcs["cuCtxGetStreamPriorityRange"] = func(least, greatest *int32) Result {
		*least, *greatest = 0, -5
		return Success
	}
	fl.funcs["cuStreamCreateWithPriority"] = func(s *Stream, flags StreamFlags, prio int32) Result {
		*s = Stream(0x5000 - int(prio))
		return Success
	}
	d := openFake(t, fl)

	ctx, err := d.CtxCreate(ContextSchedBlockingSync, 0)
	require.NoError(t, err)
	assert.Equal(t, Context(0xc0), ctx)
	require.NoError(t, d.CtxPushCurrent(ctx))
	_, err = d.CtxPopCurrent()
	require.NoError(t, err)

	least, greatest, err := d.CtxGetStreamPriorityRange()
	require.NoError(t, err)
	assert.EqualValues(t, 0, least)
	assert.EqualValues(t, -5, greatest)

	s, err := d.StreamCreateWithPriority(StreamNonBlocking, greatest)
	require.NoError(t, err)
	assert.Equal(t, Stream(0x5005), s)
	require.NoError(t, d.StreamSynchronize(s))
	require.NoError(t, d.StreamDestroy(s))
	require.NoError(t, d.CtxDestroy(ctx))
}

func TestGraphicsMapResources(t *testing.T) {
	fl := newFakeLoader()
	var (
		gotCount uint32
		gotFirst GraphicsResource
	)
	fl.funcs["cuGraphicsMapResources"] = func(count uint32, res *GraphicsResource, s Stream) Result {
		gotCount, gotFirst = count, *res
		return Success
	}
	fl.funcs["cuGraphicsSubResourceGetMappedArray"] = func(a *Array, r GraphicsResource, idx, mip uint32) Result {
		*a = Array(uintptr(r) + uintptr(mip))
		return Success
	}
	d := openFake(t, fl)

	res := []GraphicsResource{7, 8, 9}
	require.NoError(t, d.GraphicsMapResources(res, 0))
	assert.EqualValues(t, 3, gotCount)
	assert.Equal(t, GraphicsResource(7), gotFirst)

	a, err := d.GraphicsSubResourceGetMappedArray(res[0], 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Array(8), a)

	require.NoError(t, d.GraphicsUnmapResources(res, 0))
	require.NoError(t, d.GraphicsUnregisterResource(res[0]))

	gotCount = 0
	require.NoError(t, d.GraphicsMapResources(nil, 0))
	assert.Zero(t, gotCount, "empty slice must not reach the driver")
}

func TestD3DOnWindows(t *testing.T) {
	fl := newFakeLoader()
	fl.missing["cuGraphicsD3D10RegisterResource"] = true
	fl.funcs["cuD3D11GetDevice"] = func(dev *Device, adapter unsafe.Pointer) Result {
		*dev = 3
		return Success
	}
	d := openFake(t, fl, withGOOS("windows"))

	dev, err := d.D3D11GetDevice(nil)
	require.NoError(t, err)
	assert.Equal(t, Device(3), dev)

	_, err = d.GraphicsD3D11RegisterResource(nil, GraphicsRegisterNone)
	assert.NoError(t, err)

	_, err = d.GraphicsD3D10RegisterResource(nil, GraphicsRegisterReadOnly)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, d.Has("cuGraphicsD3D10RegisterResource"))
}

func TestSymbolsTable(t *testing.T) {
	d := openFake(t, newFakeLoader())

	syms := d.Symbols()
	require.Len(t, syms, len(criticalSymbols)+len(catalog))
	assert.Equal(t, "cuInit", syms[0].Name)
	assert.Equal(t, "cuDriverGetVersion", syms[1].Name)

	byName := make(map[string]SymbolStatus, len(syms))
	for _, s := range syms {
		byName[s.Name] = s
	}
	assert.Equal(t, "cuCtxCreate_v2", byName["cuCtxCreate"].Export)
	assert.True(t, byName["cuCtxCreate"].Required)
	assert.Equal(t, "cuCtxGetCurrent", byName["cuCtxGetCurrent"].Export)
	assert.False(t, byName["cuCtxGetCurrent"].Required)
	assert.Equal(t, "cuMemsetD8Async", byName["cuMemsetD8Async"].Export)
	assert.Equal(t, "windows", byName["cuD3D11GetDevice"].Platform)
	assert.Equal(t, "skipped", byName["cuD3D11GetDevice"].State.String())

	assert.False(t, d.Has("cuNoSuchFunction"))
}
