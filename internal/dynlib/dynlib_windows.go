//go:build windows

package dynlib

import (
	"errors"
	"strings"

	"golang.org/x/sys/windows"
)

func platformOpen(name string) (Handle, error) {
	// Bare names resolve from System32 only, never from the working directory.
	var flags uintptr
	if !strings.ContainsAny(name, `\/`) {
		flags = windows.LOAD_LIBRARY_SEARCH_SYSTEM32
	}
	h, err := windows.LoadLibraryEx(name, 0, flags)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

func platformSym(h Handle, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

func platformClose(h Handle) error {
	return windows.FreeLibrary(windows.Handle(h))
}

func newLoadError(op, name string, err error) *LoadError {
	le := &LoadError{Op: op, Name: name, Message: err.Error()}
	var errno windows.Errno
	if errors.As(err, &errno) {
		le.Code = int(errno)
	}
	if le.Message == "" {
		le.Message = "library could not be loaded"
	}
	return le
}
