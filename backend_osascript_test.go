package msgdlg

import (
	"strings"
	"testing"
	"time"
)

func TestAppleScript(t *testing.T) {
	script := appleScript(&Dialog{Kind: KindYesNoCancel, Icon: IconQuestion, Topic: `Say "hi"`, Message: `back\slash`})
	for _, want := range []string{
		`display dialog "back\\slash"`,
		`with title "Say \"hi\""`,
		`buttons {"Cancel", "No", "Yes"}`,
		`default button "Yes"`,
		`cancel button "Cancel"`,
		`with icon note`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("missing %s in %s", want, script)
		}
	}

	script = appleScript(&Dialog{Kind: KindCancellable, Topic: "T", Delay: 1500 * time.Millisecond})
	if !strings.HasSuffix(script, "giving up after 2") {
		t.Errorf("got %s", script)
	}

	script = appleScript(&Dialog{Kind: KindChoices, Topic: "T", Message: "M", Choices: []string{"A", "A"}})
	if !strings.HasPrefix(script, `choose from list {"1. A", "2. A"}`) {
		t.Errorf("got %s", script)
	}
}

func TestOSAScriptButton(t *testing.T) {
	choices := []string{"A", "B"}
	tests := []struct {
		kind Kind
		res  runResult
		want Button
	}{
		{KindYesNo, runResult{Stdout: "button returned:Yes"}, ButtonYes},
		{KindYesNo, runResult{Stdout: "button returned:No"}, ButtonNo},
		{KindOkCancel, runResult{ExitCode: 1, Stderr: "execution error: User canceled. (-128)"}, ButtonCancel},
		{KindCancellable, runResult{Stdout: "button returned:, gave up:true"}, ButtonOK},
		{KindCancellable, runResult{Stdout: "button returned:OK, gave up:false"}, ButtonOK},
		{KindInform, runResult{Stdout: "button returned:OK"}, ButtonOK},
		{KindChoices, runResult{Stdout: "2. B"}, ChoiceButton(1)},
		{KindChoices, runResult{Stdout: "false"}, ButtonNone},
		{KindChoices, runResult{ExitCode: 1, Stderr: "(-128)"}, ButtonNone},
	}
	for _, tt := range tests {
		got, ok := osascriptButton(&Dialog{Kind: tt.kind, Choices: choices}, tt.res)
		if !ok || got != tt.want {
			t.Errorf("%v %+v: got (%v, %v), want %v", tt.kind, tt.res, got, ok, tt.want)
		}
	}
	if _, ok := osascriptButton(&Dialog{Kind: KindYesNo}, runResult{ExitCode: 1, Stderr: "syntax error"}); ok {
		t.Error("script error accepted")
	}
}
