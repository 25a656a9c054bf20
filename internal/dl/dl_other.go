//go:build !darwin && !freebsd && !linux && !windows

package dl

func open(string) (uintptr, error) { return 0, ErrUnsupported }

func lookup(uintptr, string) (uintptr, error) { return 0, ErrUnsupported }

func release(uintptr) error { return nil }

func bind(any, uintptr) error { return ErrUnsupported }
