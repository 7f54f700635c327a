package msgdlg

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestTaskDialogConfigSize(t *testing.T) {
	if got := taskDialogConfigSize(8); got != 160 {
		t.Errorf("x64 size = %d, want 160", got)
	}
	if got := taskDialogConfigSize(4); got != 96 {
		t.Errorf("x86 size = %d, want 96", got)
	}
}

func TestPackTaskDialogConfig64(t *testing.T) {
	c := &taskDialogConfig{
		Parent:          0x1111,
		Flags:           tdfCallbackTimer,
		CommonButtons:   tdcbfOKButton | tdcbfCancelButton,
		WindowTitle:     0x2222,
		MainIcon:        tdWarningIcon,
		MainInstruction: 0x3333,
		Content:         0x4444,
		ButtonCount:     3,
		Buttons:         0x5555,
		DefaultButton:   int32(ButtonCancel),
		Footer:          0x6666,
		Callback:        0x7777,
		CallbackData:    42,
	}
	buf := packTaskDialogConfig(c, 8)
	if len(buf) != 160 {
		t.Fatalf("len = %d", len(buf))
	}
	u32 := func(off int) uint32 { return binary.LittleEndian.Uint32(buf[off:]) }
	u64 := func(off int) uint64 { return binary.LittleEndian.Uint64(buf[off:]) }

	checks := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"cbSize", uint64(u32(0)), 160},
		{"hwndParent", u64(4), 0x1111},
		{"hInstance", u64(12), 0},
		{"dwFlags", uint64(u32(20)), tdfCallbackTimer},
		{"dwCommonButtons", uint64(u32(24)), tdcbfOKButton | tdcbfCancelButton},
		{"pszWindowTitle", u64(28), 0x2222},
		{"hMainIcon", u64(36), tdWarningIcon},
		{"pszMainInstruction", u64(44), 0x3333},
		{"pszContent", u64(52), 0x4444},
		{"cButtons", uint64(u32(60)), 3},
		{"pButtons", u64(64), 0x5555},
		{"nDefaultButton", uint64(u32(72)), uint64(ButtonCancel)},
		{"pszFooter", u64(132), 0x6666},
		{"pfCallback", u64(140), 0x7777},
		{"lpCallbackData", u64(148), 42},
		{"cxWidth", uint64(u32(156)), 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %#x, want %#x", c.name, c.got, c.want)
		}
	}
}

func TestPackTaskDialogConfig32(t *testing.T) {
	buf := packTaskDialogConfig(&taskDialogConfig{Callback: 0xabcd, CallbackData: 7}, 4)
	if len(buf) != 96 {
		t.Fatalf("len = %d", len(buf))
	}
	if got := binary.LittleEndian.Uint32(buf[0:]); got != 96 {
		t.Errorf("cbSize = %d", got)
	}
	if got := binary.LittleEndian.Uint32(buf[84:]); got != 0xabcd {
		t.Errorf("pfCallback = %#x", got)
	}
	if got := binary.LittleEndian.Uint32(buf[88:]); got != 7 {
		t.Errorf("lpCallbackData = %d", got)
	}
}

func TestPackTaskDialogButtons(t *testing.T) {
	buf := packTaskDialogButtons([]taskDialogButton{{ID: 100, Text: 0x10}, {ID: 101, Text: 0x20}}, 8)
	if len(buf) != 24 {
		t.Fatalf("len = %d", len(buf))
	}
	if binary.LittleEndian.Uint32(buf[12:]) != 101 || binary.LittleEndian.Uint64(buf[16:]) != 0x20 {
		t.Errorf("second button = % x", buf[12:])
	}
}

func TestTaskDialogLayoutFor(t *testing.T) {
	l := taskDialogLayoutFor(&Dialog{Kind: KindChoices}, false)
	if l.Flags&tdfUseCommandLinks == 0 || l.CommonButtons != tdcbfCancelButton {
		t.Errorf("choices layout = %+v", l)
	}
	l = taskDialogLayoutFor(&Dialog{Kind: KindConfirm, Icon: IconWarning}, true)
	if l.Flags&tdfCallbackTimer == 0 || l.Flags&tdfPositionRelativeToWindow == 0 {
		t.Errorf("confirm flags = %#x", l.Flags)
	}
	if l.DefaultButton != int32(ButtonCancel) || l.Icon != tdWarningIcon {
		t.Errorf("confirm layout = %+v", l)
	}
	l = taskDialogLayoutFor(&Dialog{Kind: KindYesNoCancel, Icon: IconQuestion}, false)
	if l.CommonButtons != tdcbfYesButton|tdcbfNoButton|tdcbfCancelButton || l.Icon != 0 {
		t.Errorf("yes/no/cancel layout = %+v", l)
	}
}

func TestTaskDialogOutcome(t *testing.T) {
	d := &Dialog{Kind: KindChoices, Choices: []string{"A", "B", "C"}}
	if got := taskDialogOutcome(d, int32(ChoiceBase)+1); got != ChoiceButton(1) {
		t.Errorf("got %v", got)
	}
	i, ok := choiceOutcome(taskDialogOutcome(d, int32(ChoiceBase)+1), len(d.Choices))
	if !ok || i != 1 {
		t.Errorf("choice index = (%d, %v)", i, ok)
	}
	for _, id := range []int32{2, int32(ChoiceBase) - 1, int32(ChoiceBase) + 3} {
		if got := taskDialogOutcome(d, id); got != ButtonNone {
			t.Errorf("id %d: got %v", id, got)
		}
	}
	if got := taskDialogOutcome(&Dialog{Kind: KindYesNo}, 7); got != ButtonNo {
		t.Errorf("IDNO = %v", got)
	}
}

func TestCountdownText(t *testing.T) {
	if got := countdownText(1); got != "Continuing in 1 second." {
		t.Errorf("got %q", got)
	}
	if got := countdownText(5); got != "Continuing in 5 seconds." {
		t.Errorf("got %q", got)
	}
}

func TestMessageBoxStyle(t *testing.T) {
	if got := messageBoxStyle(&Dialog{Kind: KindYesNoCancel, Icon: IconQuestion}, true); got != mbYesNoCancel|mbIconQuestion {
		t.Errorf("parented style = %#x", got)
	}
	got := messageBoxStyle(&Dialog{Kind: KindComplain, Icon: IconError}, false)
	if got&mbTaskModal == 0 || got&mbIconError != mbIconError {
		t.Errorf("unparented style = %#x", got)
	}
	for _, k := range []Kind{KindChoices, KindConfirm, KindCancellable} {
		if messageBoxSupports(k, false) {
			t.Errorf("message box claims %v", k)
		}
	}
	if !messageBoxSupports(KindCancellable, true) || messageBoxSupports(KindConfirm, true) {
		t.Error("timed message box should support only the cancellable kind")
	}
	if got := messageBoxStyle(&Dialog{Kind: KindCancellable}, true); got != mbOKCancel {
		t.Errorf("cancellable style = %#x", got)
	}
}

func TestMessageBoxText(t *testing.T) {
	d := &Dialog{Kind: KindCancellable, Heading: "Shutting down", Delay: 4500 * time.Millisecond}
	if got := messageBoxText(d); got != "Shutting down\n\nContinues automatically after 5 second(s) unless cancelled." {
		t.Errorf("got %q", got)
	}
	if got := messageBoxText(&Dialog{Kind: KindWarn, Message: "M"}); got != "M" {
		t.Errorf("got %q", got)
	}
}

func TestMessageBoxOutcome(t *testing.T) {
	tests := map[int32]Button{mbTimedOut: ButtonOK, 1: ButtonOK, 2: ButtonCancel, 3: ButtonAbort, 6: ButtonYes, 7: ButtonNo, 0: ButtonNone, 11: ButtonNone}
	for id, want := range tests {
		if got := messageBoxOutcome(id); got != want {
			t.Errorf("id %d: got %v, want %v", id, got, want)
		}
	}
}
