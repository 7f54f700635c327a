//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// Local rather than Global so each logon session runs its own tray.
const mutexName = "Local\\dlgtray-single-instance"

type instanceLock interface{ release() }

type mutexInstance windows.Handle

func acquireInstance(string) (instanceLock, error) {
	name, err := windows.UTF16PtrFromString(mutexName)
	if err != nil {
		return nil, fmt.Errorf("failed to create mutex name: %w", err)
	}

	handle, err := windows.CreateMutex(nil, false, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		return nil, errAlreadyRunning
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create mutex: %w", err)
	}

	if event, err := windows.WaitForSingleObject(handle, 0); err != nil || event != windows.WAIT_OBJECT_0 {
		windows.CloseHandle(handle)
		return nil, errAlreadyRunning
	}
	return mutexInstance(handle), nil
}

func (m mutexInstance) release() {
	h := windows.Handle(m)
	windows.ReleaseMutex(h)
	windows.CloseHandle(h)
}
