package msgdlg

// noneBackend is the headless stub: nothing is shown and nothing blocks.
type noneBackend struct{}

func init() {
	registerBackend("none", func(openEnv) (Backend, error) {
		return noneBackend{}, nil
	})
}

// NewNoneBackend returns the headless stub backend.
func NewNoneBackend() Backend {
	return noneBackend{}
}

func (noneBackend) Name() string { return "none" }

func (noneBackend) Supports(Kind) bool { return true }

func (noneBackend) Show(d *Dialog) (Button, error) {
	logInfo("No dialog backend, %s %q: %s", d.Kind, d.Topic, d.Body())
	return headlessButton(d.Kind), nil
}

func (noneBackend) Close() error { return nil }

// headlessButton is the innocuous outcome per kind when nobody can answer:
// notifications are acknowledged, questions declined, choices dismissed,
// and an offered cancellation proceeds because nobody can cancel it.
func headlessButton(k Kind) Button {
	switch {
	case k.Notification():
		return ButtonOK
	case k == KindCancellable:
		return ButtonOK
	case k == KindChoices:
		return ButtonNone
	}
	return ButtonCancel
}
