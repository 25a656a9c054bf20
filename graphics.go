package cuda

import (
	"runtime"
	"unsafe"
)

// GraphicsMapResources maps registered graphics resources for access by
// CUDA. Work on s that uses them must be enqueued after this call.
func (d *Driver) GraphicsMapResources(resources []GraphicsResource, s Stream) error {
	defer runtime.KeepAlive(d)
	if len(resources) == 0 {
		return nil
	}
	return d.b.fn.cuGraphicsMapResources(uint32(len(resources)), &resources[0], s).Err()
}

// GraphicsUnmapResources unmaps resources mapped by GraphicsMapResources.
func (d *Driver) GraphicsUnmapResources(resources []GraphicsResource, s Stream) error {
	defer runtime.KeepAlive(d)
	if len(resources) == 0 {
		return nil
	}
	return d.b.fn.cuGraphicsUnmapResources(uint32(len(resources)), &resources[0], s).Err()
}

// GraphicsSubResourceGetMappedArray returns the array through which a
// subresource of a mapped texture resource can be accessed.
func (d *Driver) GraphicsSubResourceGetMappedArray(r GraphicsResource, arrayIndex, mipLevel uint32) (Array, error) {
	defer runtime.KeepAlive(d)
	var a Array
	err := d.b.fn.cuGraphicsSubResourceGetMappedArray(&a, r, arrayIndex, mipLevel).Err()
	return a, err
}

// GraphicsUnregisterResource unregisters r.
func (d *Driver) GraphicsUnregisterResource(r GraphicsResource) error {
	defer runtime.KeepAlive(d)
	return d.b.fn.cuGraphicsUnregisterResource(r).Err()
}

// D3D10GetDevice returns the CUDA device of an IDXGIAdapter.
// Windows only: returns ErrUnavailable elsewhere.
func (d *Driver) D3D10GetDevice(adapter unsafe.Pointer) (Device, error) {
	defer runtime.KeepAlive(d)
	return d.d3dGetDevice(d.b.fn.cuD3D10GetDevice, "cuD3D10GetDevice", adapter)
}

// D3D11GetDevice returns the CUDA device of an IDXGIAdapter.
// Windows only: returns ErrUnavailable elsewhere.
func (d *Driver) D3D11GetDevice(adapter unsafe.Pointer) (Device, error) {
	defer runtime.KeepAlive(d)
	return d.d3dGetDevice(d.b.fn.cuD3D11GetDevice, "cuD3D11GetDevice", adapter)
}

// GraphicsD3D10RegisterResource registers an ID3D10Resource for access by
// CUDA. Windows only and optional.
func (d *Driver) GraphicsD3D10RegisterResource(resource unsafe.Pointer, flags GraphicsRegisterFlags) (GraphicsResource, error) {
	defer runtime.KeepAlive(d)
	return d.d3dRegister(d.b.fn.cuGraphicsD3D10RegisterResource, "cuGraphicsD3D10RegisterResource", resource, flags)
}

// GraphicsD3D11RegisterResource registers an ID3D11Resource for access by
// CUDA. Windows only and optional.
func (d *Driver) GraphicsD3D11RegisterResource(resource unsafe.Pointer, flags GraphicsRegisterFlags) (GraphicsResource, error) {
	defer runtime.KeepAlive(d)
	return d.d3dRegister(d.b.fn.cuGraphicsD3D11RegisterResource, "cuGraphicsD3D11RegisterResource", resource, flags)
}

func (d *Driver) d3dGetDevice(f func(*Device, unsafe.Pointer) Result, name string, adapter unsafe.Pointer) (Device, error) {
	if f == nil {
		return 0, unavailable(name)
	}
	var dev Device
	err := f(&dev, adapter).Err()
	return dev, err
}

func (d *Driver) d3dRegister(f func(*GraphicsResource, unsafe.Pointer, GraphicsRegisterFlags) Result, name string, resource unsafe.Pointer, flags GraphicsRegisterFlags) (GraphicsResource, error) {
	if f == nil {
		return 0, unavailable(name)
	}
	var r GraphicsResource
	err := f(&r, resource, flags).Err()
	return r, err
}
