//go:build linux

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"msgdlg/internal/toolpath"
)

// clipboardTools are tried by name; wl-copy only makes sense under Wayland.
var clipboardTools = map[string][]string{
	"wl-copy": nil,
	"xclip":   {"-selection", "clipboard"},
	"xsel":    {"--clipboard", "--input"},
}

// copyToClipboardPlatform prefers wl-copy on Wayland, where the X11
// clipboard only reaches XWayland clients. Elsewhere the native X11 path
// goes first and the tools are the fallback.
func copyToClipboardPlatform(text string) error {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if err := toolCopy(text, "wl-copy", "xclip", "xsel"); err == nil {
			return nil
		}
		return nativeCopy(text)
	}
	nativeErr := nativeCopy(text)
	if nativeErr == nil {
		return nil
	}
	if err := toolCopy(text, "xclip", "xsel"); err != nil {
		return fmt.Errorf("%v; %w", nativeErr, err)
	}
	return nil
}

func toolCopy(text string, names ...string) error {
	name, path, ok := toolpath.Default().FirstOf(names...)
	if !ok {
		return fmt.Errorf("no clipboard tool found (tried %s)", strings.Join(names, ", "))
	}
	cmd := exec.Command(path, clipboardTools[name]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
