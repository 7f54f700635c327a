//go:build darwin || windows

package main

func copyToClipboardPlatform(text string) error {
	return nativeCopy(text)
}
