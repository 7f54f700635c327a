//go:build !darwin && !linux && !windows

package main

import "fmt"

func openPath(path string) error {
	return fmt.Errorf("opening files not supported on this platform")
}
