//go:build windows

package msgdlg

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"msgdlg/internal/dynlib"
)

// taskDialogBackend shows every kind through TaskDialogIndirect. The entry
// point only exists in comctl32 v6. A process whose manifest does not ask
// for v6 gets it through an activation context built from shell32's.
type taskDialogBackend struct {
	comctl      *dynlib.Library
	user32      *dynlib.Library
	actx        *activationContext // nil when the process already has v6
	indirect    uintptr
	sendMessage uintptr
}

func init() {
	registerBackend("taskdialog", openTaskDialog)
}

func openTaskDialog(openEnv) (Backend, error) {
	comctl, actx, err := openComctl6()
	if err != nil {
		return nil, err
	}
	user32 := dynlib.Open("user32.dll")
	send := user32.Symbol("SendMessageW")
	if send == 0 {
		comctl.Close()
		actx.Close()
		user32.Close()
		return nil, fmt.Errorf("%w: SendMessageW not found", ErrUnavailable)
	}
	return &taskDialogBackend{
		comctl:      comctl,
		user32:      user32,
		actx:        actx,
		indirect:    comctl.Symbol("TaskDialogIndirect"),
		sendMessage: send,
	}, nil
}

// openComctl6 loads a comctl32 that exports TaskDialogIndirect, first as
// the process resolves it and then inside a v6 activation context.
func openComctl6() (*dynlib.Library, *activationContext, error) {
	comctl := dynlib.Open("comctl32.dll")
	if comctl.Symbol("TaskDialogIndirect") != 0 {
		return comctl, nil, nil
	}
	comctl.Close()

	actx, err := newComctl6Context()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: comctl32 v6: %v", ErrUnavailable, err)
	}
	if err := actx.with(func() { comctl = dynlib.Open("comctl32.dll") }); err != nil {
		actx.Close()
		return nil, nil, fmt.Errorf("%w: comctl32 v6: %v", ErrUnavailable, err)
	}
	if comctl.Symbol("TaskDialogIndirect") == 0 {
		comctl.Close()
		actx.Close()
		return nil, nil, fmt.Errorf("%w: TaskDialogIndirect needs comctl32 v6", ErrUnavailable)
	}
	logDebug("taskdialog: comctl32 v6 loaded through the shell32 activation context")
	return comctl, actx, nil
}

func (b *taskDialogBackend) Name() string { return "taskdialog" }

func (b *taskDialogBackend) Supports(Kind) bool { return true }

func (b *taskDialogBackend) Close() error {
	err := b.comctl.Close()
	b.user32.Close()
	b.actx.Close()
	return err
}

// taskDialogState is what one running dialog threads through the callback.
type taskDialogState struct {
	backend *taskDialogBackend
	timer   *dialogTimer
	kind    Kind
}

var (
	taskDialogCallbackOnce sync.Once
	taskDialogCallback     uintptr

	taskDialogMu     sync.Mutex
	taskDialogNextID uintptr
	taskDialogActive = make(map[uintptr]*taskDialogState)
)

func taskDialogProc(hwnd, msg, wParam, lParam, refData uintptr) uintptr {
	taskDialogMu.Lock()
	st := taskDialogActive[refData]
	taskDialogMu.Unlock()
	if st == nil {
		return sOK
	}
	return st.notify(hwnd, msg, wParam)
}

func (st *taskDialogState) send(hwnd, msg, wParam, lParam uintptr) {
	syscall.SyscallN(st.backend.sendMessage, hwnd, msg, wParam, lParam)
}

func (st *taskDialogState) countdown(hwnd uintptr, elapsed time.Duration) {
	if st.kind != KindCancellable {
		return
	}
	text, err := windows.UTF16PtrFromString(countdownText(st.timer.Remaining(elapsed)))
	if err != nil {
		return
	}
	st.send(hwnd, tdmUpdateElementText, tdeFooter, uintptr(unsafe.Pointer(text)))
	runtime.KeepAlive(text)
}

func (st *taskDialogState) notify(hwnd, msg, wParam uintptr) uintptr {
	switch msg {
	case tdnCreated:
		if !st.timer.AcceptEnabled() {
			st.send(hwnd, tdmEnableButton, uintptr(ButtonOK), 0)
		}
	case tdnTimer:
		elapsed := time.Duration(wParam) * time.Millisecond
		switch st.timer.Tick(elapsed) {
		case timerEnable:
			st.send(hwnd, tdmEnableButton, uintptr(ButtonOK), 1)
		case timerAccept:
			st.send(hwnd, tdmClickButton, uintptr(ButtonOK), 0)
		default:
			st.countdown(hwnd, elapsed)
		}
	case tdnButtonClicked:
		if !st.timer.Allow(Button(wParam)) {
			return sFalse
		}
	}
	return sOK
}

func utf16Ptr(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(s)
}

func (b *taskDialogBackend) Show(d *Dialog) (Button, error) {
	if d.Kind == KindCancellable && d.Delay <= 0 {
		return ButtonOK, nil
	}
	taskDialogCallbackOnce.Do(func() {
		taskDialogCallback = windows.NewCallback(taskDialogProc)
	})

	var keep []*uint16
	ptr := func(s string) (uintptr, error) {
		p, err := utf16Ptr(s)
		if err != nil {
			return 0, err
		}
		keep = append(keep, p)
		return uintptr(unsafe.Pointer(p)), nil
	}

	h, parented := d.Parent.Handle()
	layout := taskDialogLayoutFor(d, parented)
	cfg := taskDialogConfig{
		Parent:        h,
		Flags:         layout.Flags,
		CommonButtons: layout.CommonButtons,
		MainIcon:      layout.Icon,
		DefaultButton: layout.DefaultButton,
		Callback:      taskDialogCallback,
	}

	var err error
	if cfg.WindowTitle, err = ptr(d.Topic); err != nil {
		return ButtonNone, b.textError(err)
	}
	if cfg.MainInstruction, err = ptr(d.Heading); err != nil {
		return ButtonNone, b.textError(err)
	}
	if cfg.Content, err = ptr(d.Message); err != nil {
		return ButtonNone, b.textError(err)
	}
	if d.Kind == KindCancellable {
		if cfg.Footer, err = ptr(countdownText(int((d.Delay + time.Second - 1) / time.Second))); err != nil {
			return ButtonNone, b.textError(err)
		}
	}

	var buttons []byte
	if d.Kind == KindChoices {
		links := make([]taskDialogButton, len(d.Choices))
		for i, label := range d.Choices {
			text, err := ptr(label)
			if err != nil {
				return ButtonNone, b.textError(err)
			}
			links[i] = taskDialogButton{ID: int32(ChoiceButton(i)), Text: text}
		}
		buttons = packTaskDialogButtons(links, int(unsafe.Sizeof(uintptr(0))))
		if len(buttons) > 0 {
			cfg.ButtonCount = uint32(len(links))
			cfg.Buttons = uintptr(unsafe.Pointer(&buttons[0]))
		}
	}

	st := &taskDialogState{backend: b, timer: newDialogTimer(d), kind: d.Kind}
	taskDialogMu.Lock()
	taskDialogNextID++
	id := taskDialogNextID
	taskDialogActive[id] = st
	taskDialogMu.Unlock()
	defer func() {
		taskDialogMu.Lock()
		delete(taskDialogActive, id)
		taskDialogMu.Unlock()
	}()
	cfg.CallbackData = id

	packed := packTaskDialogConfig(&cfg, int(unsafe.Sizeof(uintptr(0))))
	var pressed int32

	// The dialog runs a modal loop and calls back on this thread; its
	// windows need the v6 classes, so the context stays active throughout.
	var hr uintptr
	if err := b.actx.with(func() {
		hr, _, _ = syscall.SyscallN(b.indirect,
			uintptr(unsafe.Pointer(&packed[0])),
			uintptr(unsafe.Pointer(&pressed)),
			0, 0)
	}); err != nil {
		return ButtonNone, &NativeError{Backend: b.Name(), Op: "ActivateActCtx", Message: err.Error(), Err: err}
	}
	runtime.KeepAlive(keep)
	runtime.KeepAlive(buttons)
	runtime.KeepAlive(packed)

	if int32(hr) != sOK {
		return ButtonNone, &NativeError{
			Backend: b.Name(),
			Op:      "TaskDialogIndirect",
			Code:    int(int32(hr)),
			Message: fmt.Sprintf("HRESULT 0x%08X", uint32(hr)),
		}
	}
	return taskDialogOutcome(d, pressed), nil
}

func (b *taskDialogBackend) textError(err error) error {
	return &NativeError{Backend: b.Name(), Op: "TaskDialogIndirect", Message: "text contains a NUL byte", Err: err}
}
