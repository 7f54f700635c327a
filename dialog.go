// Package msgdlg shows modal notification, question and choice dialogs
// through whichever native dialog subsystem the host provides, and stays
// safe to call on headless machines.
package msgdlg

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind selects the dialog style.
type Kind int

const (
	KindInform Kind = iota
	KindWarn
	KindComplain
	KindYesNo
	KindOkCancel
	KindYesNoCancel
	KindChoices
	KindConfirm     // accept control disabled until the delay elapses
	KindCancellable // accepted automatically once the delay elapses
)

var kindNames = [...]string{
	KindInform:      "inform",
	KindWarn:        "warn",
	KindComplain:    "complain",
	KindYesNo:       "yes-no",
	KindOkCancel:    "ok-cancel",
	KindYesNoCancel: "yes-no-cancel",
	KindChoices:     "choices",
	KindConfirm:     "confirm",
	KindCancellable: "cancellable",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a kind name as printed by String back to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown dialog kind %q", s)
}

// Notification reports whether k only informs and asks nothing.
func (k Kind) Notification() bool {
	return k == KindInform || k == KindWarn || k == KindComplain
}

func (k Kind) defaultIcon() Icon {
	switch k {
	case KindInform, KindCancellable:
		return IconInfo
	case KindWarn, KindConfirm:
		return IconWarning
	case KindComplain:
		return IconError
	default:
		return IconQuestion
	}
}

// Icon selects the symbol shown next to the text.
type Icon int

const (
	IconDefault Icon = iota // derived from the Kind
	IconNone
	IconInfo
	IconWarning
	IconError
	IconQuestion
)

// Button is the identifier of the control that closed a dialog. Every
// backend maps its native result codes into this space.
type Button int

const (
	ButtonNone   Button = 0 // closed without a recognised control
	ButtonOK     Button = 1
	ButtonCancel Button = 2
	ButtonAbort  Button = 3
	ButtonRetry  Button = 4
	ButtonIgnore Button = 5
	ButtonYes    Button = 6
	ButtonNo     Button = 7
	ButtonClose  Button = 8
)

// ChoiceBase offsets choice identifiers past the reserved button range.
const ChoiceBase Button = 100

// ChoiceButton returns the identifier of the zero-based choice i.
func ChoiceButton(i int) Button {
	return ChoiceBase + Button(i)
}

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonOK:
		return "ok"
	case ButtonCancel:
		return "cancel"
	case ButtonAbort:
		return "abort"
	case ButtonRetry:
		return "retry"
	case ButtonIgnore:
		return "ignore"
	case ButtonYes:
		return "yes"
	case ButtonNo:
		return "no"
	case ButtonClose:
		return "close"
	}
	if b >= ChoiceBase {
		return fmt.Sprintf("choice(%d)", int(b-ChoiceBase))
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// Dialog is one request handed to a Backend. It lives for a single call.
type Dialog struct {
	Kind     Kind
	Icon     Icon
	Topic    string // window title
	Heading  string // bold lead line
	Message  string // body text
	Choices  []string
	Delay    time.Duration // KindConfirm and KindCancellable only
	Interval time.Duration // timer tick for the timed kinds
	Parent   Window
}

// Body joins heading and message for backends without a heading slot.
func (d *Dialog) Body() string {
	switch {
	case d.Heading == "":
		return d.Message
	case d.Message == "":
		return d.Heading
	}
	return d.Heading + "\n\n" + d.Message
}

// Backend performs one blocking native dialog call per Show.
type Backend interface {
	// Name identifies the backend ("gtk", "taskdialog", ...).
	Name() string
	// Supports reports whether Show handles k natively. Kinds a backend
	// does not support are emulated by the Service.
	Supports(k Kind) bool
	// Show displays d and blocks until it is dismissed. User choices,
	// cancellation included, are never errors.
	Show(d *Dialog) (Button, error)
	// Close releases native resources. Further Show calls are invalid.
	Close() error
}

var (
	// ErrUnavailable reports that a backend cannot run on this host.
	ErrUnavailable = errors.New("dialog backend unavailable")
	// ErrUnknownBackend reports a backend name nothing is registered under.
	ErrUnknownBackend = errors.New("unknown dialog backend")
)

// NativeError reports that the native dialog call itself failed.
type NativeError struct {
	Backend string
	Op      string
	Code    int
	Message string
	Err     error
}

func (e *NativeError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s: %s failed: %s (code %d)", e.Backend, e.Op, msg, e.Code)
	}
	return fmt.Sprintf("%s: %s failed: %s", e.Backend, e.Op, msg)
}

func (e *NativeError) Unwrap() error {
	return e.Err
}
