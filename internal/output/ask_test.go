package output

import (
	"errors"
	"io"
	"strings"
	"testing"

	"msgdlg"
)

func consoleDialogs(input string) *msgdlg.Service {
	b := msgdlg.NewConsoleBackend(strings.NewReader(input), io.Discard)
	return msgdlg.NewServiceWithBackend(b, msgdlg.DefaultConfig(), nil)
}

func TestAsk(t *testing.T) {
	tests := []struct {
		kind     msgdlg.Kind
		input    string
		answer   string
		value    interface{}
		accepted bool
	}{
		{msgdlg.KindInform, "", "ok", true, true},
		{msgdlg.KindYesNo, "y\n", "yes", true, true},
		{msgdlg.KindYesNo, "n\n", "no", false, false},
		{msgdlg.KindOkCancel, "c\n", "cancel", false, false},
		{msgdlg.KindYesNoCancel, "n\n", "no", false, false},
		{msgdlg.KindYesNoCancel, "c\n", "cancel", nil, false},
		{msgdlg.KindChoices, "2\n", "chosen", 1, true},
		{msgdlg.KindChoices, "\n", "dismissed", nil, false},
		{msgdlg.KindConfirm, "o\n", "ok", true, true},
		{msgdlg.KindCancellable, "", "ok", true, true},
	}
	for _, tt := range tests {
		svc := consoleDialogs(tt.input)
		got, err := Ask(svc, Request{Kind: tt.kind, Topic: "T", Choices: []string{"R", "G"}})
		svc.Close()
		if err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}
		if got.Answer != tt.answer || got.Value != tt.value || got.Accepted != tt.accepted {
			t.Errorf("%s with %q: got %+v, want %s/%v/%v", tt.kind, tt.input, got, tt.answer, tt.value, tt.accepted)
		}
	}
}

func TestReplyText(t *testing.T) {
	if got := (Reply{Answer: "chosen", Choice: "G"}).Text(); got != "G" {
		t.Errorf("chosen text = %q", got)
	}
	if got := (Reply{Answer: "dismissed"}).Text(); got != "dismissed" {
		t.Errorf("dismissed text = %q", got)
	}
}

type failingDialogs struct {
	msgdlg.Extended
	err error
}

func (f failingDialogs) AskYesNo(topic, heading, message string) (bool, error) {
	return false, f.err
}

func TestAskErrors(t *testing.T) {
	want := errors.New("no display")
	if _, err := Ask(failingDialogs{err: want}, Request{Kind: msgdlg.KindYesNo}); !errors.Is(err, want) {
		t.Errorf("err = %v", err)
	}
	if _, err := Ask(failingDialogs{}, Request{Kind: msgdlg.Kind(99)}); err == nil {
		t.Error("unknown kind accepted")
	}
}
