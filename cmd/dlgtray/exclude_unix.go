//go:build linux || freebsd || openbsd || netbsd || dragonfly

package main

// trayExcludes lists backends the tray must not resolve to. The tray runs
// its own GTK main loop, so in-process GTK dialogs would race it.
func trayExcludes() []string {
	return []string{"gtk"}
}
