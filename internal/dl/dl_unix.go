//go:build darwin || freebsd || linux

package dl

import "github.com/ebitengine/purego"

func open(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookup(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func release(handle uintptr) error {
	return purego.Dlclose(handle)
}

func bind(fptr any, addr uintptr) error {
	purego.RegisterFunc(fptr, addr)
	return nil
}
