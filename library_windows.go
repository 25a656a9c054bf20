//go:build windows

package cuda

// LibraryName is the file name of the CUDA driver library.
const LibraryName = "nvcuda.dll"
