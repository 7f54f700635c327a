package main

import (
	"fmt"
	"strings"
	"time"

	"golang.design/x/hotkey"
)

// digitKeys are the keys bound to entry indexes 0 through 9.
var digitKeys = [10]hotkey.Key{
	hotkey.Key0, hotkey.Key1, hotkey.Key2, hotkey.Key3, hotkey.Key4,
	hotkey.Key5, hotkey.Key6, hotkey.Key7, hotkey.Key8, hotkey.Key9,
}

var entryHotkeys [10]*hotkey.Hotkey

// InitHotkeys registers the entry hotkeys once the tray is up.
func InitHotkeys() {
	go func() {
		// systray must finish its own setup before keys can be grabbed
		time.Sleep(500 * time.Millisecond)
		registerEntryHotkeys()
	}()
}

func registerEntryHotkeys() {
	mods, desc := getEntryHotkeyModifiers()
	var failed []string
	for i, key := range digitKeys {
		if err := bindEntryHotkey(i, mods, key); err != nil {
			failed = append(failed, fmt.Sprintf("%d: %v", i, err))
		}
	}

	bound := len(digitKeys) - len(failed)
	switch {
	case bound > 0:
		setStatus(fmt.Sprintf("Hotkeys ready: %s+[0-9]", desc))
	case len(failed) > 0:
		setStatus("Hotkey error: " + failed[0])
	}
	LogDebug("Registered %d entry hotkeys on %s+digit", bound, desc)
	if len(failed) > 0 {
		LogWarn("Hotkey registration errors: %s", strings.Join(failed, "; "))
	}
}

func bindEntryHotkey(index int, mods []hotkey.Modifier, key hotkey.Key) error {
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return err
	}
	entryHotkeys[index] = hk
	go func() {
		for range hk.Keydown() {
			LogHotkeyTriggered(index)
			runEntryByIndex(index)
		}
	}()
	return nil
}

func runEntryByIndex(num int) {
	entry, ok := currentConfig().EntryByIndex(num)
	if !ok {
		setStatus(fmt.Sprintf("No entry with index %d", num))
		return
	}
	executeEntry(entry)
}

// CleanupHotkeys unregisters every bound entry hotkey.
func CleanupHotkeys() {
	for i, hk := range entryHotkeys {
		if hk != nil {
			hk.Unregister()
			entryHotkeys[i] = nil
		}
	}
}
