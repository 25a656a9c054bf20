package cuda

import "strconv"

// Result is a CUresult status code returned by driver entry points.
// Non-success values implement error.
type Result int32

// Common driver status codes.
const (
	Success                   Result = 0
	ErrorInvalidValue         Result = 1
	ErrorOutOfMemory          Result = 2
	ErrorNotInitialized       Result = 3
	ErrorDeinitialized        Result = 4
	ErrorNoDevice             Result = 100
	ErrorInvalidDevice        Result = 101
	ErrorInvalidContext       Result = 201
	ErrorAlreadyMapped        Result = 208
	ErrorNotMappedAsArray     Result = 213
	ErrorContextAlreadyInUse  Result = 216
	ErrorInvalidGraphicsCtx   Result = 219
	ErrorInvalidHandle        Result = 400
	ErrorNotFound             Result = 500
	ErrorNotReady             Result = 600
	ErrorPeerAccessNotEnabled Result = 705
	ErrorNotSupported         Result = 801
	ErrorUnknown              Result = 999
)

var resultNames = map[Result]string{
	Success:                   "CUDA_SUCCESS",
	ErrorInvalidValue:         "CUDA_ERROR_INVALID_VALUE",
	ErrorOutOfMemory:          "CUDA_ERROR_OUT_OF_MEMORY",
	ErrorNotInitialized:       "CUDA_ERROR_NOT_INITIALIZED",
	ErrorDeinitialized:        "CUDA_ERROR_DEINITIALIZED",
	ErrorNoDevice:             "CUDA_ERROR_NO_DEVICE",
	ErrorInvalidDevice:        "CUDA_ERROR_INVALID_DEVICE",
	ErrorInvalidContext:       "CUDA_ERROR_INVALID_CONTEXT",
	ErrorContextAlreadyInUse:  "CUDA_ERROR_CONTEXT_ALREADY_IN_USE",
	ErrorInvalidHandle:        "CUDA_ERROR_INVALID_HANDLE",
	ErrorNotFound:             "CUDA_ERROR_NOT_FOUND",
	ErrorNotReady:             "CUDA_ERROR_NOT_READY",
	ErrorNotMappedAsArray:     "CUDA_ERROR_NOT_MAPPED_AS_ARRAY",
	ErrorAlreadyMapped:        "CUDA_ERROR_ALREADY_MAPPED",
	ErrorNotSupported:         "CUDA_ERROR_NOT_SUPPORTED",
	ErrorUnknown:              "CUDA_ERROR_UNKNOWN",
	ErrorInvalidGraphicsCtx:   "CUDA_ERROR_INVALID_GRAPHICS_CONTEXT",
	ErrorPeerAccessNotEnabled: "CUDA_ERROR_PEER_ACCESS_NOT_ENABLED",
}

// Name returns the driver's symbolic name for r, e.g. "CUDA_ERROR_NO_DEVICE".
func (r Result) Name() string {
	if n, ok := resultNames[r]; ok {
		return n
	}
	return "CUresult(" + strconv.Itoa(int(r)) + ")"
}

func (r Result) Error() string {
	return "cuda: " + r.Name()
}

// Err returns nil for Success and r otherwise.
func (r Result) Err() error {
	if r == Success {
		return nil
	}
	return r
}
