package msgdlg

import (
	"encoding/binary"
	"fmt"
)

// TASKDIALOGCONFIG flags, common buttons and icons.
const (
	tdfAllowDialogCancellation  = 0x0008
	tdfUseCommandLinks          = 0x0010
	tdfCallbackTimer            = 0x0800
	tdfPositionRelativeToWindow = 0x1000
	tdfSizeToContent            = 0x01000000
	tdcbfOKButton               = 0x0001
	tdcbfYesButton              = 0x0002
	tdcbfNoButton               = 0x0004
	tdcbfCancelButton           = 0x0008
	tdWarningIcon               = 0xFFFF
	tdErrorIcon                 = 0xFFFE
	tdInformationIcon           = 0xFFFD
)

// Task dialog notifications and messages.
const (
	tdnCreated           = 0
	tdnButtonClicked     = 2
	tdnTimer             = 4
	wmUser               = 0x0400
	tdmClickButton       = wmUser + 102
	tdmUpdateElementText = wmUser + 114
	tdmEnableButton      = wmUser + 111
	tdeFooter            = 2
	sOK                  = 0
	sFalse               = 1
)

// taskDialogConfig holds the TASKDIALOGCONFIG fields the backend sets.
// Pointer fields are raw addresses the caller keeps alive for the call.
type taskDialogConfig struct {
	Parent          uintptr
	Flags           uint32
	CommonButtons   uint32
	WindowTitle     uintptr
	MainIcon        uintptr
	MainInstruction uintptr
	Content         uintptr
	ButtonCount     uint32
	Buttons         uintptr
	DefaultButton   int32
	Footer          uintptr
	Callback        uintptr
	CallbackData    uintptr
}

type taskDialogButton struct {
	ID   int32
	Text uintptr
}

// taskDialogConfigSize is sizeof(TASKDIALOGCONFIG) for a pointer size.
// The SDK declares the struct with 1-byte packing.
func taskDialogConfigSize(ptrSize int) int {
	return 8*4 + 16*ptrSize // eight 32-bit fields, sixteen pointers
}

type packer struct {
	buf     []byte
	ptrSize int
}

func (p *packer) u32(v uint32) {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
}

func (p *packer) ptr(v uintptr) {
	if p.ptrSize == 8 {
		p.buf = binary.LittleEndian.AppendUint64(p.buf, uint64(v))
		return
	}
	p.buf = binary.LittleEndian.AppendUint32(p.buf, uint32(v))
}

// packTaskDialogConfig lays c out as a packed TASKDIALOGCONFIG.
func packTaskDialogConfig(c *taskDialogConfig, ptrSize int) []byte {
	size := taskDialogConfigSize(ptrSize)
	p := &packer{buf: make([]byte, 0, size), ptrSize: ptrSize}
	p.u32(uint32(size))            // cbSize
	p.ptr(c.Parent)                // hwndParent
	p.ptr(0)                       // hInstance
	p.u32(c.Flags)                 // dwFlags
	p.u32(c.CommonButtons)         // dwCommonButtons
	p.ptr(c.WindowTitle)           // pszWindowTitle
	p.ptr(c.MainIcon)              // hMainIcon / pszMainIcon
	p.ptr(c.MainInstruction)       // pszMainInstruction
	p.ptr(c.Content)               // pszContent
	p.u32(c.ButtonCount)           // cButtons
	p.ptr(c.Buttons)               // pButtons
	p.u32(uint32(c.DefaultButton)) // nDefaultButton
	p.u32(0)                       // cRadioButtons
	p.ptr(0)                       // pRadioButtons
	p.u32(0)                       // nDefaultRadioButton
	p.ptr(0)                       // pszVerificationText
	p.ptr(0)                       // pszExpandedInformation
	p.ptr(0)                       // pszExpandedControlText
	p.ptr(0)                       // pszCollapsedControlText
	p.ptr(0)                       // hFooterIcon
	p.ptr(c.Footer)                // pszFooter
	p.ptr(c.Callback)              // pfCallback
	p.ptr(c.CallbackData)          // lpCallbackData
	p.u32(0)                       // cxWidth
	return p.buf
}

// packTaskDialogButtons lays out a packed TASKDIALOG_BUTTON array.
func packTaskDialogButtons(buttons []taskDialogButton, ptrSize int) []byte {
	p := &packer{buf: make([]byte, 0, len(buttons)*(4+ptrSize)), ptrSize: ptrSize}
	for _, b := range buttons {
		p.u32(uint32(b.ID))
		p.ptr(b.Text)
	}
	return p.buf
}

// taskDialogLayout is the button and icon setup for one dialog kind.
type taskDialogLayout struct {
	Flags         uint32
	CommonButtons uint32
	DefaultButton int32
	Icon          uintptr
}

func taskDialogLayoutFor(d *Dialog, parented bool) taskDialogLayout {
	l := taskDialogLayout{Flags: tdfAllowDialogCancellation | tdfSizeToContent}
	switch d.Kind {
	case KindYesNo:
		l.CommonButtons = tdcbfYesButton | tdcbfNoButton
		l.DefaultButton = int32(ButtonYes)
	case KindOkCancel:
		l.CommonButtons = tdcbfOKButton | tdcbfCancelButton
		l.DefaultButton = int32(ButtonOK)
	case KindYesNoCancel:
		l.CommonButtons = tdcbfYesButton | tdcbfNoButton | tdcbfCancelButton
		l.DefaultButton = int32(ButtonYes)
	case KindChoices:
		l.Flags |= tdfUseCommandLinks
		l.CommonButtons = tdcbfCancelButton
	case KindConfirm:
		l.Flags |= tdfCallbackTimer
		l.CommonButtons = tdcbfOKButton | tdcbfCancelButton
		l.DefaultButton = int32(ButtonCancel)
	case KindCancellable:
		l.Flags |= tdfCallbackTimer
		l.CommonButtons = tdcbfOKButton | tdcbfCancelButton
		l.DefaultButton = int32(ButtonOK)
	default:
		l.CommonButtons = tdcbfOKButton
		l.DefaultButton = int32(ButtonOK)
	}
	if parented {
		l.Flags |= tdfPositionRelativeToWindow
	}
	switch d.Icon {
	case IconInfo:
		l.Icon = tdInformationIcon
	case IconWarning:
		l.Icon = tdWarningIcon
	case IconError:
		l.Icon = tdErrorIcon
	}
	return l
}

// taskDialogOutcome maps the pnButton result of TaskDialogIndirect.
func taskDialogOutcome(d *Dialog, id int32) Button {
	if d.Kind == KindChoices {
		if id >= int32(ChoiceBase) && id < int32(ChoiceButton(len(d.Choices))) {
			return Button(id)
		}
		return ButtonNone
	}
	return messageBoxOutcome(id)
}

// countdownText is the footer of a cancellable dialog.
func countdownText(seconds int) string {
	if seconds == 1 {
		return "Continuing in 1 second."
	}
	return fmt.Sprintf("Continuing in %d seconds.", seconds)
}
