package main

import (
	"errors"
	"path/filepath"

	"msgdlg"
)

// errAlreadyRunning is returned when another dlgtray owns the instance lock.
var errAlreadyRunning = errors.New("another instance of dlgtray is already running")

// instance is the lock held for the lifetime of the tray.
var instance instanceLock

// EnsureSingleInstance takes the instance lock or reports who holds it.
func EnsureSingleInstance() error {
	l, err := acquireInstance(lockFilePath())
	if err != nil {
		return err
	}
	instance = l
	return nil
}

// ReleaseSingleInstance drops the lock taken by EnsureSingleInstance.
func ReleaseSingleInstance() {
	if instance != nil {
		instance.release()
		instance = nil
	}
}

func lockFilePath() string {
	return filepath.Join(msgdlg.ConfigDir(), "dlgtray.lock")
}
