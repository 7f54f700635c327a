package msgdlg

// GtkResponseType values.
const (
	gtkResponseNone        = -1
	gtkResponseDeleteEvent = -4
	gtkResponseOK          = -5
	gtkResponseCancel      = -6
	gtkResponseClose       = -7
	gtkResponseYes         = -8
	gtkResponseNo          = -9
)

// gtkNoDefault leaves a dialog without a default response.
const gtkNoDefault = 0

type gtkButton struct {
	label    string // mnemonic label
	response int32
}

// gtkButtons returns the action area buttons of a dialog, in GNOME order
// (affirmative last), and its default response.
func gtkButtons(d *Dialog) ([]gtkButton, int32) {
	cancel := gtkButton{"_Cancel", gtkResponseCancel}
	ok := gtkButton{"_OK", gtkResponseOK}
	switch d.Kind {
	case KindYesNo:
		return []gtkButton{{"_No", gtkResponseNo}, {"_Yes", gtkResponseYes}}, gtkResponseYes
	case KindOkCancel, KindCancellable:
		return []gtkButton{cancel, ok}, gtkResponseOK
	case KindConfirm:
		return []gtkButton{cancel, ok}, gtkResponseCancel
	case KindYesNoCancel:
		return []gtkButton{cancel, {"_No", gtkResponseNo}, {"_Yes", gtkResponseYes}}, gtkResponseYes
	case KindChoices:
		return []gtkButton{cancel}, gtkNoDefault
	}
	return []gtkButton{ok}, gtkResponseOK
}

// gtkIconName maps an icon to a freedesktop icon name; "" shows none.
func gtkIconName(i Icon) string {
	switch i {
	case IconInfo:
		return "dialog-information"
	case IconWarning:
		return "dialog-warning"
	case IconError:
		return "dialog-error"
	case IconQuestion:
		return "dialog-question"
	}
	return ""
}

// gtkOutcome maps the value gtk_dialog_run returned to a Button.
func gtkOutcome(d *Dialog, response int32) Button {
	if d.Kind == KindChoices && response >= int32(ChoiceBase) {
		return Button(response)
	}
	switch response {
	case gtkResponseOK:
		return ButtonOK
	case gtkResponseCancel:
		return ButtonCancel
	case gtkResponseClose:
		return ButtonClose
	case gtkResponseYes:
		return ButtonYes
	case gtkResponseNo:
		return ButtonNo
	}
	// Window closed or destroyed.
	switch {
	case d.Kind.Notification():
		return ButtonOK
	case d.Kind == KindChoices:
		return ButtonNone
	}
	return ButtonCancel
}
