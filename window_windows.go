//go:build windows

package msgdlg

import "golang.org/x/sys/windows"

// ForegroundTracker reports the foreground window when it belongs to this
// process, for hosts that do not track their own windows.
type ForegroundTracker struct{}

// ActiveWindow implements WindowTracker.
func (ForegroundTracker) ActiveWindow() Window {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return NoWindow
	}
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil {
		return NoWindow
	}
	if pid != windows.GetCurrentProcessId() {
		return NoWindow
	}
	return WindowHandle(uintptr(hwnd))
}

// HostTracker returns the tracker to use when the host supplies none.
func HostTracker() WindowTracker {
	return ForegroundTracker{}
}
