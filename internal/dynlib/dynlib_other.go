//go:build !darwin && !linux && !freebsd && !windows

package dynlib

import (
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("dynamic loading is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)

func platformOpen(name string) (Handle, error) {
	return 0, errUnsupported
}

func platformSym(h Handle, name string) (uintptr, error) {
	return 0, errUnsupported
}

func platformClose(h Handle) error {
	return errUnsupported
}

func newLoadError(op, name string, err error) *LoadError {
	return &LoadError{Op: op, Name: name, Message: err.Error()}
}
