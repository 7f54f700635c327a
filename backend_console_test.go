package msgdlg

import (
	"strings"
	"testing"
	"time"
)

func newTestConsole(input string) (*consoleBackend, *strings.Builder) {
	out := &strings.Builder{}
	b := NewConsoleBackend(strings.NewReader(input), out).(*consoleBackend)
	return b, out
}

func TestConsoleQuestions(t *testing.T) {
	tests := []struct {
		kind  Kind
		input string
		want  Button
	}{
		{KindInform, "", ButtonOK},
		{KindYesNo, "y\n", ButtonYes},
		{KindYesNo, "maybe\nNO\n", ButtonNo},
		{KindYesNo, "", ButtonCancel},
		{KindOkCancel, "ok\n", ButtonOK},
		{KindOkCancel, "c\n", ButtonCancel},
		{KindYesNoCancel, "cancel\n", ButtonCancel},
		{KindYesNoCancel, " yes \n", ButtonYes},
		{KindChoices, "0\n4\n2\n", ChoiceButton(1)},
		{KindChoices, "\n", ButtonNone},
		{KindChoices, "", ButtonNone},
	}
	for _, tt := range tests {
		b, _ := newTestConsole(tt.input)
		got, err := b.Show(&Dialog{Kind: tt.kind, Topic: "T", Message: "M", Choices: []string{"A", "B", "C"}})
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%v %q: got %v, want %v", tt.kind, tt.input, got, tt.want)
		}
	}
}

func TestConsoleHeader(t *testing.T) {
	b, out := newTestConsole("")
	b.Show(&Dialog{Kind: KindComplain, Icon: IconError, Topic: "Backup", Heading: "Failed", Message: "disk full"})
	got := out.String()
	for _, want := range []string{"[ERROR] Backup", "FAILED", "disk full"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestConsoleChoicesListed(t *testing.T) {
	b, out := newTestConsole("1\n")
	b.Show(&Dialog{Kind: KindChoices, Topic: "T", Choices: []string{"Red", "Green"}})
	if !strings.Contains(out.String(), "  1) Red\n  2) Green\n") {
		t.Errorf("got %q", out.String())
	}
}

func TestConsoleConfirmRejectsEarly(t *testing.T) {
	b, out := newTestConsole("ok\nok\nok\n")
	clock := &fakeClock{t: time.Unix(0, 0)}
	b.now = func() time.Time {
		clock.advance(600 * time.Millisecond)
		return clock.t
	}
	got, _ := b.Show(&Dialog{Kind: KindConfirm, Topic: "T", Delay: 2 * time.Second})
	if got != ButtonOK {
		t.Errorf("got %v", got)
	}
	if strings.Count(out.String(), "Please wait") != 2 {
		t.Errorf("expected two early rejections in %q", out.String())
	}
}

func TestConsoleConfirmCancel(t *testing.T) {
	b, _ := newTestConsole("c\n")
	if got, _ := b.Show(&Dialog{Kind: KindConfirm, Topic: "T", Delay: time.Hour}); got != ButtonCancel {
		t.Errorf("got %v", got)
	}
}

func TestConsoleCancellableAutoAccepts(t *testing.T) {
	b, _ := newTestConsole("")
	start := time.Now()
	got, _ := b.Show(&Dialog{Kind: KindCancellable, Topic: "T", Delay: 50 * time.Millisecond})
	if got != ButtonOK {
		t.Errorf("got %v", got)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Error("accepted before the delay")
	}
}

func TestConsoleCancellableCancel(t *testing.T) {
	b, _ := newTestConsole("c\n")
	if got, _ := b.Show(&Dialog{Kind: KindCancellable, Topic: "T", Delay: time.Hour}); got != ButtonCancel {
		t.Errorf("got %v", got)
	}
}
