package msgdlg

import (
	"testing"
	"time"
)

func TestZenityArgs(t *testing.T) {
	d := &Dialog{Kind: KindWarn, Topic: "Disk", Heading: "Low <space>", Message: "a & b", Parent: WindowHandle(0x1c)}
	args := zenityArgs(d)
	for _, want := range []string{"--warning", "--title=Disk", "--text=<b>Low &lt;space&gt;</b>\n\na &amp; b", "--no-wrap", "--attach=0x1c"} {
		if !hasArg(args, want) {
			t.Errorf("missing %q in %q", want, args)
		}
	}
}

func TestZenityChoiceArgs(t *testing.T) {
	d := &Dialog{Kind: KindChoices, Topic: "T", Message: "Pick", Choices: []string{"A", "B"}}
	args := zenityArgs(d)
	if !hasArg(args, "--list") || !hasArg(args, "--print-column=1") {
		t.Errorf("not a list dialog: %q", args)
	}
	n := len(args)
	if args[n-4] != "0" || args[n-3] != "A" || args[n-2] != "1" || args[n-1] != "B" {
		t.Errorf("rows = %q", args[n-4:])
	}
	if hasArg(args, "--attach=0x0") {
		t.Error("absent parent attached")
	}
}

func TestZenityButton(t *testing.T) {
	choices := []string{"A", "B", "C"}
	tests := []struct {
		kind Kind
		res  runResult
		want Button
	}{
		{KindInform, runResult{ExitCode: 1}, ButtonOK},
		{KindYesNo, runResult{ExitCode: 0}, ButtonYes},
		{KindYesNo, runResult{ExitCode: 1}, ButtonNo},
		{KindOkCancel, runResult{ExitCode: 0}, ButtonOK},
		{KindOkCancel, runResult{ExitCode: 1}, ButtonCancel},
		{KindYesNoCancel, runResult{ExitCode: 0}, ButtonYes},
		{KindYesNoCancel, runResult{ExitCode: 1, Stdout: "No\n"}, ButtonNo},
		{KindYesNoCancel, runResult{ExitCode: 1}, ButtonCancel},
		{KindYesNoCancel, runResult{ExitCode: 5}, ButtonCancel},
		{KindChoices, runResult{ExitCode: 0, Stdout: "1"}, ChoiceButton(1)},
		{KindChoices, runResult{ExitCode: 0, Stdout: ""}, ButtonNone},
		{KindChoices, runResult{ExitCode: 0, Stdout: "7"}, ButtonNone},
		{KindChoices, runResult{ExitCode: 1}, ButtonNone},
		{KindCancellable, runResult{TimedOut: true, ExitCode: -1}, ButtonOK},
		{KindCancellable, runResult{ExitCode: 1}, ButtonCancel},
		{KindCancellable, runResult{ExitCode: 0}, ButtonOK},
	}
	for _, tt := range tests {
		got, ok := zenityButton(&Dialog{Kind: tt.kind, Choices: choices}, tt.res)
		if !ok {
			t.Errorf("%v %+v: reported failure", tt.kind, tt.res)
			continue
		}
		if got != tt.want {
			t.Errorf("%v %+v: got %v, want %v", tt.kind, tt.res, got, tt.want)
		}
	}
	if _, ok := zenityButton(&Dialog{Kind: KindYesNo}, runResult{ExitCode: 255}); ok {
		t.Error("exit status 255 accepted")
	}
}

func TestZenityShow(t *testing.T) {
	run := &fakeRunner{results: []runResult{{ExitCode: 0, Stdout: "2"}}}
	env := testOpenEnv("zenity")
	env.runner = run
	b, err := openZenity(env)
	if err != nil {
		t.Fatal(err)
	}
	got, err := b.Show(&Dialog{Kind: KindChoices, Topic: "T", Choices: []string{"A", "B", "C"}})
	if err != nil {
		t.Fatal(err)
	}
	if got != ChoiceButton(2) {
		t.Errorf("got %v", got)
	}
	if run.calls[0].name != "/usr/bin/zenity" || run.calls[0].deadline {
		t.Errorf("call = %+v", run.calls[0])
	}
}

func TestZenityCancellableDeadline(t *testing.T) {
	run := &fakeRunner{results: []runResult{{TimedOut: true, ExitCode: -1}}}
	env := testOpenEnv("zenity")
	env.runner = run
	b, _ := openZenity(env)
	got, err := b.Show(&Dialog{Kind: KindCancellable, Topic: "T", Delay: time.Second})
	if err != nil || got != ButtonOK {
		t.Errorf("got (%v, %v)", got, err)
	}
	if !run.calls[0].deadline {
		t.Error("cancellable dialog ran without a deadline")
	}

	got, _ = b.Show(&Dialog{Kind: KindCancellable, Topic: "T"})
	if got != ButtonOK || len(run.calls) != 1 {
		t.Error("zero delay should accept without showing")
	}
}

func TestZenityUnavailable(t *testing.T) {
	if _, err := openZenity(testOpenEnv()); err == nil {
		t.Error("opened without any zenity on PATH")
	}
}

func TestZenityFailure(t *testing.T) {
	run := &fakeRunner{results: []runResult{{ExitCode: 255, Stderr: "cannot open display"}}}
	env := testOpenEnv("zenity")
	env.runner = run
	b, _ := openZenity(env)
	_, err := b.Show(&Dialog{Kind: KindYesNo, Topic: "T"})
	ne, ok := err.(*NativeError)
	if !ok || ne.Message != "cannot open display" || ne.Code != 255 {
		t.Errorf("err = %v", err)
	}
}

func TestZenityClosedYesNoCancelIsAbsent(t *testing.T) {
	args := zenityArgs(&Dialog{Kind: KindYesNoCancel, Topic: "T"})
	for _, want := range []string{"--ok-label=Yes", "--cancel-label=Cancel", "--extra-button=No"} {
		if !hasArg(args, want) {
			t.Errorf("missing %q in %q", want, args)
		}
	}

	run := &fakeRunner{results: []runResult{{ExitCode: 1}, {ExitCode: 1, Stdout: "No\n"}}}
	env := testOpenEnv("zenity")
	env.runner = run
	b, err := openZenity(env)
	if err != nil {
		t.Fatal(err)
	}
	s := NewServiceWithBackend(b, DefaultConfig(), nil)
	if got, err := s.AskYesNoCancel("T", "H", "M"); err != nil || got != AnswerCancel {
		t.Errorf("closed window: got (%v, %v), want cancel", got, err)
	}
	if got, err := s.AskYesNoCancel("T", "H", "M"); err != nil || got != AnswerNo {
		t.Errorf("No button: got (%v, %v), want no", got, err)
	}
}
