//go:build linux

package main

import (
	"fmt"
	"os/exec"

	"msgdlg/internal/toolpath"
)

// openPath opens a file or folder with its default application.
func openPath(path string) error {
	name, tool, ok := toolpath.Default().FirstOf("xdg-open", "gio", "kde-open5")
	if !ok {
		return fmt.Errorf("no opener found (install xdg-utils)")
	}
	if name == "gio" {
		return exec.Command(tool, "open", path).Start()
	}
	return exec.Command(tool, path).Start()
}
