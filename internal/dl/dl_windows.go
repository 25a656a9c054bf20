//go:build windows

package dl

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

func open(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func lookup(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func release(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func bind(fptr any, addr uintptr) error {
	purego.RegisterFunc(fptr, addr)
	return nil
}
