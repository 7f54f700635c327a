package msgdlg

import (
	"fmt"
	"time"
)

// MessageBox style bits.
const (
	mbOK              = 0x00000000
	mbOKCancel        = 0x00000001
	mbYesNoCancel     = 0x00000003
	mbYesNo           = 0x00000004
	mbIconError       = 0x00000010
	mbIconQuestion    = 0x00000020
	mbIconWarning     = 0x00000030
	mbIconInformation = 0x00000040
	mbDefButton1      = 0x00000000
	mbTaskModal       = 0x00002000
	mbSetForeground   = 0x00010000
	mbTopMost         = 0x00040000
)

// mbTimedOut is what MessageBoxTimeoutW returns when the timeout expires.
const mbTimedOut = 32000

// messageBoxSupports reports the kinds a classic message box can show.
// KindCancellable needs MessageBoxTimeoutW.
func messageBoxSupports(k Kind, timed bool) bool {
	switch k {
	case KindInform, KindWarn, KindComplain, KindYesNo, KindOkCancel, KindYesNoCancel:
		return true
	case KindCancellable:
		return timed
	}
	return false
}

// messageBoxText is the body text. A timed box cannot count down, so it
// states the delay once.
func messageBoxText(d *Dialog) string {
	if d.Kind != KindCancellable {
		return d.Body()
	}
	secs := int((d.Delay + time.Second - 1) / time.Second)
	note := fmt.Sprintf("Continues automatically after %d second(s) unless cancelled.", secs)
	if body := d.Body(); body != "" {
		return body + "\n\n" + note
	}
	return note
}

// messageBoxStyle returns the MB_* flags for d. Without a parent the box
// is task modal and brought to the foreground.
func messageBoxStyle(d *Dialog, parented bool) uint32 {
	var style uint32
	switch d.Kind {
	case KindYesNo:
		style = mbYesNo
	case KindOkCancel, KindCancellable:
		style = mbOKCancel
	case KindYesNoCancel:
		style = mbYesNoCancel
	default:
		style = mbOK
	}
	switch d.Icon {
	case IconInfo:
		style |= mbIconInformation
	case IconWarning:
		style |= mbIconWarning
	case IconError:
		style |= mbIconError
	case IconQuestion:
		style |= mbIconQuestion
	}
	style |= mbDefButton1
	if !parented {
		style |= mbTaskModal | mbSetForeground | mbTopMost
	}
	return style
}

// messageBoxOutcome maps an IDOK..IDNO result. The IDs coincide with the
// Button values. A timeout accepts; anything else (0 on failure) is
// ButtonNone.
func messageBoxOutcome(id int32) Button {
	if id == mbTimedOut {
		return ButtonOK
	}
	b := Button(id)
	if b >= ButtonOK && b <= ButtonNo {
		return b
	}
	return ButtonNone
}
