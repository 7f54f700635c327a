package msgdlg

import "fmt"

// Window refers to a host top-level window, or to no window at all. The
// handle is platform specific (HWND on Windows, X11 window id on Unix) and
// is passed through unexamined.
type Window struct {
	handle uintptr
	ok     bool
}

// NoWindow is the absent window.
var NoWindow = Window{}

// WindowHandle wraps a native handle. A zero handle yields NoWindow.
func WindowHandle(h uintptr) Window {
	if h == 0 {
		return NoWindow
	}
	return Window{handle: h, ok: true}
}

// Handle returns the native handle and whether one is present.
func (w Window) Handle() (uintptr, bool) {
	return w.handle, w.ok
}

// Present reports whether w refers to a window.
func (w Window) Present() bool {
	return w.ok
}

func (w Window) String() string {
	if !w.ok {
		return "none"
	}
	return fmt.Sprintf("%#x", w.handle)
}

// WindowTracker is supplied by the embedding application so dialogs can be
// parented to its current top-level window.
type WindowTracker interface {
	ActiveWindow() Window
}

// TrackerFunc adapts a function to WindowTracker.
type TrackerFunc func() Window

// ActiveWindow calls f.
func (f TrackerFunc) ActiveWindow() Window {
	return f()
}
