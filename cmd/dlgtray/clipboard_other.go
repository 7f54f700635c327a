//go:build !darwin && !windows && !linux

package main

import (
	"fmt"
	"runtime"
)

func copyToClipboardPlatform(string) error {
	return fmt.Errorf("no clipboard support on %s", runtime.GOOS)
}
