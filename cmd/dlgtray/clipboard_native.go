//go:build linux || darwin || windows

package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce    sync.Once
	clipboardInitErr error
	clipboardMu      sync.Mutex
)

// nativeCopy writes text through the system clipboard API. Writes are
// serialised; the library keeps one owner per process.
func nativeCopy(text string) error {
	clipboardOnce.Do(func() {
		clipboardInitErr = clipboard.Init()
	})
	if clipboardInitErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardInitErr)
	}
	clipboardMu.Lock()
	defer clipboardMu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
