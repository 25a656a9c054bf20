package cuda

import (
	"log/slog"
	"runtime"
)

// Option configures a Registry.
//
// Example:
//
//	reg := cuda.NewRegistry(cuda.WithLogger(slog.Default()))
//	drv, err := reg.Get()
type Option func(*registryOptions)

// registryOptions holds optional configuration for Registry creation.
type registryOptions struct {
	loader Loader
	logger *slog.Logger
	goos   string
}

func defaultRegistryOptions() registryOptions {
	return registryOptions{
		loader: SystemLoader,
		goos:   runtime.GOOS,
	}
}

// WithLoader sets the loader used to open the driver library.
// A nil loader keeps the SystemLoader.
func WithLoader(l Loader) Option {
	return func(o *registryOptions) {
		if l != nil {
			o.loader = l
		}
	}
}

// WithLogger sets a logger for this registry instead of the package logger
// configured with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *registryOptions) {
		o.logger = l
	}
}
