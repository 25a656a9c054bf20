// Package cuda binds to the NVIDIA CUDA driver library at runtime.
//
// # Overview
//
// The driver library (libcuda.so.1, or nvcuda.dll on Windows) is opened on
// first use, a fixed catalog of driver entry points is resolved by name, and
// the result is shared by every caller in the process as a *Driver. No cgo
// toolchain or CUDA SDK is needed at build time; a machine without the
// driver simply gets an error from Get.
//
// The package only binds to the driver. It adds no GPU logic of its own;
// entry points are exposed with raw handle types for use by rendering and
// graphics interop code.
//
// # Quick Start
//
//	drv, err := cuda.Get()
//	if err != nil {
//	    // CUDA is not available on this system.
//	    return err
//	}
//	defer drv.Close()
//
//	fmt.Println("CUDA", drv.DriverVersion())
//
//	dev, err := drv.DeviceGet(0)
//	...
//
// # Lifecycle
//
// Get loads the driver if no handle is open and otherwise shares the loaded
// one. Concurrent first calls load it once. When the last handle is closed
// the library is unloaded, and a later Get loads it again from scratch.
//
// # Mandatory and Optional Entry Points
//
// Most entry points are mandatory: if the library lacks one, Get fails with
// a *MissingSymbolError. Some are optional and older drivers may not export
// them; check with Driver.Has, or handle ErrUnavailable from the call.
// Several entry points are resolved under their "_v2" export names.
// The Direct3D entry points are only looked up on Windows.
//
// # Logging
//
// The package is silent by default. Use SetLogger to see which entry points
// were resolved and which driver version was found.
package cuda
