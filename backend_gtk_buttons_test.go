package msgdlg

import "testing"

func TestGTKButtons(t *testing.T) {
	tests := []struct {
		kind      Kind
		responses []int32
		def       int32
	}{
		{KindInform, []int32{gtkResponseOK}, gtkResponseOK},
		{KindYesNo, []int32{gtkResponseNo, gtkResponseYes}, gtkResponseYes},
		{KindYesNoCancel, []int32{gtkResponseCancel, gtkResponseNo, gtkResponseYes}, gtkResponseYes},
		{KindConfirm, []int32{gtkResponseCancel, gtkResponseOK}, gtkResponseCancel},
		{KindCancellable, []int32{gtkResponseCancel, gtkResponseOK}, gtkResponseOK},
		{KindChoices, []int32{gtkResponseCancel}, gtkNoDefault},
	}
	for _, tt := range tests {
		buttons, def := gtkButtons(&Dialog{Kind: tt.kind})
		if def != tt.def {
			t.Errorf("%v: default %d, want %d", tt.kind, def, tt.def)
		}
		if len(buttons) != len(tt.responses) {
			t.Errorf("%v: %d buttons, want %d", tt.kind, len(buttons), len(tt.responses))
			continue
		}
		for i, b := range buttons {
			if b.response != tt.responses[i] {
				t.Errorf("%v: button %d response %d, want %d", tt.kind, i, b.response, tt.responses[i])
			}
		}
	}
}

func TestGTKOutcome(t *testing.T) {
	choices := &Dialog{Kind: KindChoices, Choices: []string{"A", "B"}}
	tests := []struct {
		d        *Dialog
		response int32
		want     Button
	}{
		{&Dialog{Kind: KindYesNo}, gtkResponseYes, ButtonYes},
		{&Dialog{Kind: KindYesNo}, gtkResponseNo, ButtonNo},
		{&Dialog{Kind: KindYesNo}, gtkResponseDeleteEvent, ButtonCancel},
		{&Dialog{Kind: KindInform}, gtkResponseDeleteEvent, ButtonOK},
		{&Dialog{Kind: KindOkCancel}, gtkResponseCancel, ButtonCancel},
		{&Dialog{Kind: KindOkCancel}, gtkResponseNone, ButtonCancel},
		{choices, int32(ChoiceButton(1)), ChoiceButton(1)},
		{choices, gtkResponseCancel, ButtonCancel},
		{choices, gtkResponseDeleteEvent, ButtonNone},
	}
	for _, tt := range tests {
		if got := gtkOutcome(tt.d, tt.response); got != tt.want {
			t.Errorf("%v response %d: got %v, want %v", tt.d.Kind, tt.response, got, tt.want)
		}
	}
}

func TestGTKIconName(t *testing.T) {
	if gtkIconName(IconNone) != "" || gtkIconName(IconWarning) != "dialog-warning" {
		t.Error("icon mapping")
	}
}
