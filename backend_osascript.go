package msgdlg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"msgdlg/internal/toolpath"
)

// osascriptBackend shows dialogs through AppleScript's `display dialog`
// and `choose from list`.
type osascriptBackend struct {
	tools *toolpath.Resolver
	run   commandRunner
}

func init() {
	registerBackend("osascript", openOSAScript)
}

func openOSAScript(env openEnv) (Backend, error) {
	if _, ok := env.tools.Find("osascript"); !ok {
		return nil, fmt.Errorf("%w: osascript not found on PATH", ErrUnavailable)
	}
	return &osascriptBackend{tools: env.tools, run: env.runner}, nil
}

func (b *osascriptBackend) Name() string { return "osascript" }

func (b *osascriptBackend) Supports(k Kind) bool {
	return k != KindConfirm
}

func (b *osascriptBackend) Show(d *Dialog) (Button, error) {
	if d.Kind == KindCancellable && d.Delay <= 0 {
		return ButtonOK, nil
	}
	path, ok := b.tools.Find("osascript")
	if !ok {
		return ButtonNone, &NativeError{Backend: b.Name(), Op: "osascript", Message: "tool not found on PATH"}
	}

	res, err := runTool(b.run, 0, path, "-e", appleScript(d))
	if err != nil {
		return ButtonNone, toolError(b.Name(), "osascript", res, err)
	}
	btn, ok := osascriptButton(d, res)
	if !ok {
		return ButtonNone, toolError(b.Name(), "osascript", res, nil)
	}
	return btn, nil
}

func (b *osascriptBackend) Close() error { return nil }

// appleQuote quotes s as an AppleScript string literal.
func appleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func appleList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = appleQuote(it)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

func appleIcon(i Icon) string {
	switch i {
	case IconWarning:
		return " with icon caution"
	case IconError:
		return " with icon stop"
	case IconInfo, IconQuestion:
		return " with icon note"
	}
	return ""
}

// choiceLabel numbers a choice so duplicate labels stay distinguishable.
func choiceLabel(i int, label string) string {
	return strconv.Itoa(i+1) + ". " + label
}

func appleScript(d *Dialog) string {
	if d.Kind == KindChoices {
		labels := make([]string, len(d.Choices))
		for i, c := range d.Choices {
			labels[i] = choiceLabel(i, c)
		}
		return fmt.Sprintf("choose from list %s with title %s with prompt %s",
			appleList(labels), appleQuote(d.Topic), appleQuote(d.Body()))
	}

	var buttons []string
	var def, cancel string
	switch d.Kind {
	case KindYesNo:
		buttons, def = []string{"No", "Yes"}, "Yes"
	case KindOkCancel, KindConfirm, KindCancellable:
		buttons, def, cancel = []string{"Cancel", "OK"}, "OK", "Cancel"
	case KindYesNoCancel:
		buttons, def, cancel = []string{"Cancel", "No", "Yes"}, "Yes", "Cancel"
	default:
		buttons, def = []string{"OK"}, "OK"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "display dialog %s with title %s buttons %s default button %s",
		appleQuote(d.Body()), appleQuote(d.Topic), appleList(buttons), appleQuote(def))
	if cancel != "" {
		fmt.Fprintf(&sb, " cancel button %s", appleQuote(cancel))
	}
	sb.WriteString(appleIcon(d.Icon))
	if d.Kind == KindCancellable {
		secs := int(math.Ceil(d.Delay.Seconds()))
		if secs < 1 {
			secs = 1
		}
		fmt.Fprintf(&sb, " giving up after %d", secs)
	}
	return sb.String()
}

// osascriptButton parses "button returned:X, gave up:Y" or the list
// selection. The cancel button makes osascript fail with error -128.
func osascriptButton(d *Dialog, res runResult) (Button, bool) {
	if res.ExitCode != 0 {
		if strings.Contains(res.Stderr, "-128") {
			if d.Kind == KindChoices {
				return ButtonNone, true
			}
			return ButtonCancel, true
		}
		return ButtonNone, false
	}

	out := strings.TrimSpace(res.Stdout)
	if d.Kind == KindChoices {
		if out == "" || out == "false" {
			return ButtonNone, true
		}
		num, _, found := strings.Cut(out, ". ")
		if !found {
			return ButtonNone, true
		}
		i, err := strconv.Atoi(num)
		if err != nil || i < 1 || i > len(d.Choices) {
			return ButtonNone, true
		}
		return ChoiceButton(i - 1), true
	}

	if strings.Contains(out, "gave up:true") {
		return ButtonOK, true
	}

	pressed := out
	if _, rest, found := strings.Cut(out, "button returned:"); found {
		pressed = rest
	}
	if i := strings.Index(pressed, ","); i >= 0 {
		pressed = pressed[:i]
	}
	switch strings.TrimSpace(pressed) {
	case "Yes":
		return ButtonYes, true
	case "No":
		return ButtonNo, true
	case "OK":
		return ButtonOK, true
	case "Cancel":
		return ButtonCancel, true
	}
	if d.Kind.Notification() {
		return ButtonOK, true
	}
	return ButtonNone, true
}
