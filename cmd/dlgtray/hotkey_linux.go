//go:build linux

package main

import "golang.design/x/hotkey"

// getEntryHotkeyModifiers returns the platform-specific modifiers for the entry hotkeys
// Linux: Ctrl+Alt+[0-9] (Mod1 is typically Alt on X11)
func getEntryHotkeyModifiers() ([]hotkey.Modifier, string) {
	return []hotkey.Modifier{hotkey.ModCtrl, hotkey.Mod1}, "Ctrl+Alt"
}
