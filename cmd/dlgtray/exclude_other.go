//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package main

func trayExcludes() []string {
	return nil
}
