//go:build windows

package main

import "golang.design/x/hotkey"

// getEntryHotkeyModifiers returns the platform-specific modifiers for the entry hotkeys
// Windows: Ctrl+Alt+[0-9]
func getEntryHotkeyModifiers() ([]hotkey.Modifier, string) {
	return []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModAlt}, "Ctrl+Alt"
}
