//go:build darwin || linux || freebsd

package dynlib

import (
	"errors"

	"github.com/ebitengine/purego"
)

func platformOpen(name string) (Handle, error) {
	h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, errors.New("dlopen returned a null handle")
	}
	return Handle(h), nil
}

func platformSym(h Handle, name string) (uintptr, error) {
	return purego.Dlsym(uintptr(h), name)
}

func platformClose(h Handle) error {
	return purego.Dlclose(uintptr(h))
}

// newLoadError keeps the dlerror text; dl* functions report no error code.
func newLoadError(op, name string, err error) *LoadError {
	msg := err.Error()
	if msg == "" {
		msg = "library could not be loaded"
	}
	return &LoadError{Op: op, Name: name, Message: msg}
}
