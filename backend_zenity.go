package msgdlg

import (
	"fmt"
	"strconv"
	"strings"

	"msgdlg/internal/toolpath"
)

// zenityBackend drives zenity or one of its drop-in clones (qarma,
// matedialog). Exit status 0 is the affirmative button, 1 the negative
// one or a closed window, 5 a zenity-side timeout.
type zenityBackend struct {
	tool  string
	tools *toolpath.Resolver
	run   commandRunner
}

func init() {
	registerBackend("zenity", openZenity)
}

func openZenity(env openEnv) (Backend, error) {
	name, _, ok := env.tools.FirstOf("zenity", "qarma", "matedialog")
	if !ok {
		return nil, fmt.Errorf("%w: zenity not found on PATH", ErrUnavailable)
	}
	return &zenityBackend{tool: name, tools: env.tools, run: env.runner}, nil
}

func (b *zenityBackend) Name() string { return "zenity" }

// Confirm needs a control that starts disabled, which zenity lacks.
func (b *zenityBackend) Supports(k Kind) bool {
	return k != KindConfirm
}

func (b *zenityBackend) Show(d *Dialog) (Button, error) {
	if d.Kind == KindCancellable && d.Delay <= 0 {
		return ButtonOK, nil
	}
	path, ok := b.tools.Find(b.tool)
	if !ok {
		return ButtonNone, &NativeError{Backend: b.Name(), Op: b.tool, Message: "tool not found on PATH"}
	}

	var deadline = d.Delay
	if d.Kind != KindCancellable {
		deadline = 0
	}
	res, err := runTool(b.run, deadline, path, zenityArgs(d)...)
	if err != nil {
		return ButtonNone, toolError(b.Name(), b.tool, res, err)
	}
	btn, ok := zenityButton(d, res)
	if !ok {
		return ButtonNone, toolError(b.Name(), b.tool, res, nil)
	}
	return btn, nil
}

func (b *zenityBackend) Close() error { return nil }

var pangoEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// zenityText renders the heading bold; zenity parses --text as Pango markup.
func zenityText(d *Dialog) string {
	msg := pangoEscaper.Replace(d.Message)
	if d.Heading == "" {
		return msg
	}
	head := "<b>" + pangoEscaper.Replace(d.Heading) + "</b>"
	if msg == "" {
		return head
	}
	return head + "\n\n" + msg
}

func zenityArgs(d *Dialog) []string {
	var args []string
	switch d.Kind {
	case KindInform:
		args = append(args, "--info")
	case KindWarn:
		args = append(args, "--warning")
	case KindComplain:
		args = append(args, "--error")
	case KindYesNo:
		args = append(args, "--question", "--ok-label=Yes", "--cancel-label=No")
	case KindOkCancel, KindConfirm, KindCancellable:
		args = append(args, "--question", "--ok-label=OK", "--cancel-label=Cancel")
	case KindYesNoCancel:
		// Only the extra button prints; a closed window looks like Cancel.
		args = append(args, "--question", "--ok-label=Yes", "--cancel-label=Cancel", "--extra-button=No")
	case KindChoices:
		args = append(args, "--list", "--column=id", "--column=Choice", "--hide-column=1", "--print-column=1", "--hide-header")
	}

	args = append(args, "--title="+d.Topic, "--text="+zenityText(d))
	if d.Kind.Notification() || d.Kind == KindYesNo || d.Kind == KindOkCancel || d.Kind == KindYesNoCancel {
		args = append(args, "--no-wrap")
	}
	if id, ok := attachArg(d.Parent); ok {
		args = append(args, "--attach="+id)
	}

	if d.Kind == KindChoices {
		for i, label := range d.Choices {
			args = append(args, strconv.Itoa(i), label)
		}
	}
	return args
}

// zenityButton maps an exit status to a Button; ok is false when the exit
// status means zenity itself failed.
func zenityButton(d *Dialog, res runResult) (Button, bool) {
	if d.Kind == KindCancellable && res.TimedOut {
		return ButtonOK, true
	}
	if res.TimedOut {
		return ButtonCancel, true
	}

	code := res.ExitCode
	if code != 0 && code != 1 && code != 5 {
		return ButtonNone, false
	}

	switch d.Kind {
	case KindInform, KindWarn, KindComplain:
		return ButtonOK, true
	case KindYesNo:
		if code == 0 {
			return ButtonYes, true
		}
		if code == 1 {
			return ButtonNo, true
		}
		return ButtonCancel, true
	case KindYesNoCancel:
		switch {
		case code == 0:
			return ButtonYes, true
		case code == 1 && strings.TrimSpace(res.Stdout) == "No":
			return ButtonNo, true
		}
		return ButtonCancel, true
	case KindChoices:
		if code != 0 {
			return ButtonNone, true
		}
		i, err := strconv.Atoi(strings.TrimSpace(res.Stdout))
		if err != nil || i < 0 || i >= len(d.Choices) {
			return ButtonNone, true
		}
		return ChoiceButton(i), true
	case KindCancellable:
		if code == 1 {
			return ButtonCancel, true
		}
		return ButtonOK, true
	}

	if code == 0 {
		return ButtonOK, true
	}
	return ButtonCancel, true
}
