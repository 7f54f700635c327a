package msgdlg

import (
	"fmt"
	"time"
)

// DefaultTimerInterval is how often timed dialogs check elapsed time.
const DefaultTimerInterval = 200 * time.Millisecond

// confirmGate keeps the accept control of a KindConfirm dialog disabled
// until a tick reports that the delay has passed.
type confirmGate struct {
	delay   time.Duration
	enabled bool
}

func newConfirmGate(delay time.Duration) *confirmGate {
	return &confirmGate{delay: delay, enabled: delay <= 0}
}

func (g *confirmGate) Enabled() bool {
	return g.enabled
}

// Tick reports true exactly once, on the tick that enables the control.
func (g *confirmGate) Tick(elapsed time.Duration) bool {
	if g.enabled || elapsed < g.delay {
		return false
	}
	g.enabled = true
	return true
}

// Allow reports whether a click on b may close the dialog.
func (g *confirmGate) Allow(b Button) bool {
	return g.enabled || !affirmative(b)
}

// acceptGate triggers acceptance of a KindCancellable dialog once.
type acceptGate struct {
	delay time.Duration
	fired bool
}

func newAcceptGate(delay time.Duration) *acceptGate {
	return &acceptGate{delay: delay}
}

// Tick reports true exactly once, on the first tick at or past the delay.
func (g *acceptGate) Tick(elapsed time.Duration) bool {
	if g.fired || elapsed < g.delay {
		return false
	}
	g.fired = true
	return true
}

func (g *acceptGate) Fired() bool {
	return g.fired
}

// gatedConfirm emulates KindConfirm on a backend that cannot disable a
// control: an affirmative answer given before the delay elapsed asks again.
// ask receives the time still to wait, zero on the first ask.
func gatedConfirm(ask func(wait time.Duration) (Button, error), delay time.Duration, now func() time.Time) (Button, error) {
	start := now()
	var wait time.Duration
	for {
		b, err := ask(wait)
		if err != nil {
			return ButtonNone, err
		}
		elapsed := now().Sub(start)
		if !affirmative(b) || elapsed >= delay {
			return b, nil
		}
		wait = delay - elapsed
		logDebug("confirmation given %v before the %v delay elapsed, asking again", elapsed, delay)
	}
}

// waitNote appends the early-confirmation notice to a re-asked message.
func waitNote(message string, wait time.Duration) string {
	secs := int((wait + time.Second - 1) / time.Second)
	note := fmt.Sprintf("Please wait %d more second(s) before confirming.", secs)
	if message == "" {
		return note
	}
	return message + "\n\n" + note
}

type timerAction int

const (
	timerWait   timerAction = iota // nothing to do on this tick
	timerEnable                    // enable the accept control
	timerAccept                    // press the accept control
)

// dialogTimer drives the gate of one timed dialog from native timer ticks.
// Kinds without a delay never produce an action.
type dialogTimer struct {
	delay   time.Duration
	confirm *confirmGate
	accept  *acceptGate
}

func newDialogTimer(d *Dialog) *dialogTimer {
	t := &dialogTimer{delay: d.Delay}
	switch d.Kind {
	case KindConfirm:
		t.confirm = newConfirmGate(d.Delay)
	case KindCancellable:
		t.accept = newAcceptGate(d.Delay)
	}
	return t
}

// Needed reports whether the dialog needs ticks at all.
func (t *dialogTimer) Needed() bool {
	switch {
	case t.confirm != nil:
		return !t.confirm.Enabled()
	case t.accept != nil:
		return true
	}
	return false
}

// AcceptEnabled reports whether the accept control starts enabled.
func (t *dialogTimer) AcceptEnabled() bool {
	return t.confirm == nil || t.confirm.Enabled()
}

func (t *dialogTimer) Tick(elapsed time.Duration) timerAction {
	switch {
	case t.confirm != nil && t.confirm.Tick(elapsed):
		return timerEnable
	case t.accept != nil && t.accept.Tick(elapsed):
		return timerAccept
	}
	return timerWait
}

// Allow reports whether a click on b may close the dialog.
func (t *dialogTimer) Allow(b Button) bool {
	if t.confirm == nil {
		return true
	}
	return t.confirm.Allow(b)
}

// Remaining is the whole seconds left before the delay elapses, rounded up.
func (t *dialogTimer) Remaining(elapsed time.Duration) int {
	left := t.delay - elapsed
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}
