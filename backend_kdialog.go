package msgdlg

import (
	"fmt"
	"strconv"
	"strings"

	"msgdlg/internal/toolpath"
)

// kdialogBackend drives KDE's kdialog. Exit status 0 is yes/ok, 1 no,
// 2 cancel.
type kdialogBackend struct {
	tools *toolpath.Resolver
	run   commandRunner
}

func init() {
	registerBackend("kdialog", openKDialog)
}

func openKDialog(env openEnv) (Backend, error) {
	if _, ok := env.tools.Find("kdialog"); !ok {
		return nil, fmt.Errorf("%w: kdialog not found on PATH", ErrUnavailable)
	}
	return &kdialogBackend{tools: env.tools, run: env.runner}, nil
}

func (b *kdialogBackend) Name() string { return "kdialog" }

func (b *kdialogBackend) Supports(k Kind) bool {
	return k != KindConfirm
}

func (b *kdialogBackend) Show(d *Dialog) (Button, error) {
	if d.Kind == KindCancellable && d.Delay <= 0 {
		return ButtonOK, nil
	}
	path, ok := b.tools.Find("kdialog")
	if !ok {
		return ButtonNone, &NativeError{Backend: b.Name(), Op: "kdialog", Message: "tool not found on PATH"}
	}

	var deadline = d.Delay
	if d.Kind != KindCancellable {
		deadline = 0
	}
	res, err := runTool(b.run, deadline, path, kdialogArgs(d)...)
	if err != nil {
		return ButtonNone, toolError(b.Name(), "kdialog", res, err)
	}
	btn, ok := kdialogButton(d, res)
	if !ok {
		return ButtonNone, toolError(b.Name(), "kdialog", res, nil)
	}
	return btn, nil
}

func (b *kdialogBackend) Close() error { return nil }

func kdialogArgs(d *Dialog) []string {
	args := []string{"--title", d.Topic}
	if id, ok := attachArg(d.Parent); ok {
		args = append(args, "--attach", id)
	}

	text := d.Body()
	switch d.Kind {
	case KindInform:
		args = append(args, "--msgbox", text)
	case KindWarn:
		args = append(args, "--sorry", text)
	case KindComplain:
		args = append(args, "--error", text)
	case KindYesNo:
		args = append(args, "--yesno", text)
	case KindOkCancel, KindConfirm, KindCancellable:
		args = append(args, "--yesno", text, "--yes-label", "OK", "--no-label", "Cancel")
	case KindYesNoCancel:
		args = append(args, "--yesnocancel", text)
	case KindChoices:
		args = append(args, "--menu", text)
		for i, label := range d.Choices {
			args = append(args, strconv.Itoa(i), label)
		}
	}
	return args
}

func kdialogButton(d *Dialog, res runResult) (Button, bool) {
	if res.TimedOut {
		if d.Kind == KindCancellable {
			return ButtonOK, true
		}
		return ButtonCancel, true
	}

	code := res.ExitCode
	if d.Kind.Notification() {
		return ButtonOK, code == 0 || code == 1
	}

	switch d.Kind {
	case KindYesNo:
		switch code {
		case 0:
			return ButtonYes, true
		case 1:
			return ButtonNo, true
		case 2:
			return ButtonCancel, true
		}
	case KindYesNoCancel:
		switch code {
		case 0:
			return ButtonYes, true
		case 1:
			return ButtonNo, true
		case 2:
			return ButtonCancel, true
		}
	case KindOkCancel, KindConfirm, KindCancellable:
		switch code {
		case 0:
			return ButtonOK, true
		case 1, 2:
			return ButtonCancel, true
		}
	case KindChoices:
		switch code {
		case 0:
			i, err := strconv.Atoi(strings.TrimSpace(res.Stdout))
			if err != nil || i < 0 || i >= len(d.Choices) {
				return ButtonNone, true
			}
			return ChoiceButton(i), true
		case 1, 2:
			return ButtonNone, true
		}
	}
	return ButtonNone, false
}
