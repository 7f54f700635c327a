package msgdlg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleBackend asks questions on a text stream. Input is read by a
// single goroutine so a timed prompt can stop waiting without losing the
// line the user types later.
type consoleBackend struct {
	in   io.Reader
	out  io.Writer
	now  func() time.Time
	once sync.Once
	mu   sync.Mutex
	line chan string
}

func init() {
	registerBackend("console", func(env openEnv) (Backend, error) {
		return NewConsoleBackend(env.stdin, env.stdout), nil
	})
}

// NewConsoleBackend returns a backend that prompts on out and reads
// answers from in, one per line.
func NewConsoleBackend(in io.Reader, out io.Writer) Backend {
	return &consoleBackend{in: in, out: out, now: time.Now}
}

func (b *consoleBackend) Name() string { return "console" }

func (b *consoleBackend) Supports(Kind) bool { return true }

func (b *consoleBackend) Close() error { return nil }

func (b *consoleBackend) start() {
	b.once.Do(func() {
		b.line = make(chan string)
		go func() {
			sc := bufio.NewScanner(b.in)
			for sc.Scan() {
				b.line <- strings.TrimSpace(sc.Text())
			}
			close(b.line)
		}()
	})
}

// readLine blocks until a line arrives; ok is false at end of input.
func (b *consoleBackend) readLine() (string, bool) {
	b.start()
	s, ok := <-b.line
	return s, ok
}

// readLineWithin waits at most d; expired reports the deadline passing.
func (b *consoleBackend) readLineWithin(d time.Duration) (line string, ok, expired bool) {
	b.start()
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case s, ok := <-b.line:
		if !ok {
			// Nobody can type any more; wait the delay out.
			<-timer.C
			return "", false, true
		}
		return s, true, false
	case <-timer.C:
		return "", true, true
	}
}

func (b *consoleBackend) printf(format string, args ...interface{}) {
	fmt.Fprintf(b.out, format, args...)
}

func (b *consoleBackend) header(d *Dialog) {
	tag := "INFO"
	switch d.Icon {
	case IconWarning:
		tag = "WARNING"
	case IconError:
		tag = "ERROR"
	case IconQuestion:
		tag = "QUESTION"
	}
	b.printf("\n[%s] %s\n", tag, d.Topic)
	if d.Heading != "" {
		b.printf("%s\n", strings.ToUpper(d.Heading))
	}
	if d.Message != "" {
		b.printf("%s\n", d.Message)
	}
}

func (b *consoleBackend) Show(d *Dialog) (Button, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.header(d)
	switch d.Kind {
	case KindInform, KindWarn, KindComplain:
		return ButtonOK, nil
	case KindYesNo:
		return b.ask("[y]es/[n]o: ", map[string]Button{"y": ButtonYes, "yes": ButtonYes, "n": ButtonNo, "no": ButtonNo}), nil
	case KindOkCancel:
		return b.ask("[o]k/[c]ancel: ", okCancelWords), nil
	case KindYesNoCancel:
		return b.ask("[y]es/[n]o/[c]ancel: ", map[string]Button{
			"y": ButtonYes, "yes": ButtonYes, "n": ButtonNo, "no": ButtonNo, "c": ButtonCancel, "cancel": ButtonCancel,
		}), nil
	case KindChoices:
		return b.choose(d), nil
	case KindConfirm:
		return b.confirm(d), nil
	case KindCancellable:
		return b.cancellable(d), nil
	}
	return headlessButton(d.Kind), nil
}

var okCancelWords = map[string]Button{"o": ButtonOK, "ok": ButtonOK, "c": ButtonCancel, "cancel": ButtonCancel}

// ask repeats prompt until a listed word is typed; end of input cancels.
func (b *consoleBackend) ask(prompt string, words map[string]Button) Button {
	for {
		b.printf("%s", prompt)
		s, ok := b.readLine()
		if !ok {
			b.printf("\n")
			return ButtonCancel
		}
		if btn, found := words[strings.ToLower(s)]; found {
			return btn
		}
	}
}

func (b *consoleBackend) choose(d *Dialog) Button {
	for i, c := range d.Choices {
		b.printf("  %d) %s\n", i+1, c)
	}
	for {
		b.printf("Choose 1-%d (empty to cancel): ", len(d.Choices))
		s, ok := b.readLine()
		if !ok || s == "" {
			if !ok {
				b.printf("\n")
			}
			return ButtonNone
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 1 && n <= len(d.Choices) {
			return ChoiceButton(n - 1)
		}
	}
}

func (b *consoleBackend) confirm(d *Dialog) Button {
	gate := newConfirmGate(d.Delay)
	start := b.now()
	for {
		btn := b.ask("[o]k/[c]ancel: ", okCancelWords)
		gate.Tick(b.now().Sub(start))
		if gate.Allow(btn) {
			return btn
		}
		wait := d.Delay - b.now().Sub(start)
		b.printf("Please wait %s before confirming.\n", wait.Round(100*time.Millisecond))
	}
}

func (b *consoleBackend) cancellable(d *Dialog) Button {
	start := b.now()
	for {
		remaining := d.Delay - b.now().Sub(start)
		if remaining <= 0 {
			b.printf("\n")
			return ButtonOK
		}
		b.printf("Continuing in %s, type c to cancel or press enter to continue: ", remaining.Round(time.Second))
		s, ok, expired := b.readLineWithin(remaining)
		if expired || !ok {
			b.printf("\n")
			return ButtonOK
		}
		switch strings.ToLower(s) {
		case "c", "cancel":
			return ButtonCancel
		case "", "o", "ok":
			return ButtonOK
		}
	}
}
