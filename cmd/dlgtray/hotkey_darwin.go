//go:build darwin

package main

import "golang.design/x/hotkey"

// getEntryHotkeyModifiers returns the platform-specific modifiers for the entry hotkeys
// macOS: Command+Option+[0-9]
func getEntryHotkeyModifiers() ([]hotkey.Modifier, string) {
	return []hotkey.Modifier{hotkey.ModOption, hotkey.ModCmd}, "Cmd+Option"
}
