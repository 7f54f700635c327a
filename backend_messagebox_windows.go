//go:build windows

package msgdlg

import (
	"errors"
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"msgdlg/internal/dynlib"
)

// messageBoxBackend shows the basic kinds through MessageBoxW, and
// KindCancellable through MessageBoxTimeoutW when user32 exports it. The
// heading has no place of its own and leads the body text.
type messageBoxBackend struct {
	user32  *dynlib.Library
	timeout uintptr // MessageBoxTimeoutW, or 0
}

func init() {
	registerBackend("messagebox", openMessageBox)
}

func openMessageBox(openEnv) (Backend, error) {
	user32 := dynlib.Open("user32.dll")
	b := &messageBoxBackend{user32: user32, timeout: user32.Symbol("MessageBoxTimeoutW")}
	if b.timeout == 0 {
		logDebug("messagebox: MessageBoxTimeoutW not available, cancellable dialogs are emulated")
	}
	return b, nil
}

func (b *messageBoxBackend) Name() string { return "messagebox" }

func (b *messageBoxBackend) Supports(k Kind) bool { return messageBoxSupports(k, b.timeout != 0) }

func (b *messageBoxBackend) Show(d *Dialog) (Button, error) {
	if d.Kind == KindCancellable && d.Delay <= 0 {
		return ButtonOK, nil
	}
	text, err := windows.UTF16PtrFromString(messageBoxText(d))
	if err != nil {
		return ButtonNone, &NativeError{Backend: b.Name(), Op: "MessageBoxW", Message: "text contains a NUL byte", Err: err}
	}
	caption, err := windows.UTF16PtrFromString(d.Topic)
	if err != nil {
		return ButtonNone, &NativeError{Backend: b.Name(), Op: "MessageBoxW", Message: "topic contains a NUL byte", Err: err}
	}

	h, parented := d.Parent.Handle()
	style := messageBoxStyle(d, parented)
	op := "MessageBoxW"
	var id int32
	if d.Kind == KindCancellable {
		op = "MessageBoxTimeoutW"
		r, _, e := syscall.SyscallN(b.timeout,
			h,
			uintptr(unsafe.Pointer(text)),
			uintptr(unsafe.Pointer(caption)),
			uintptr(style),
			0, // language
			uintptr(d.Delay/time.Millisecond))
		runtime.KeepAlive(text)
		runtime.KeepAlive(caption)
		id = int32(r)
		if e != 0 {
			err = e
		}
	} else {
		id, err = windows.MessageBox(windows.HWND(h), text, caption, style)
	}
	if id == 0 {
		ne := &NativeError{Backend: b.Name(), Op: op, Message: "call failed", Err: err}
		var errno windows.Errno
		if errors.As(err, &errno) {
			ne.Code = int(errno)
			ne.Message = errno.Error()
		}
		return ButtonNone, ne
	}
	return messageBoxOutcome(id), nil
}

func (b *messageBoxBackend) Close() error {
	return b.user32.Close()
}
