package msgdlg

import (
	"sync"
	"time"
)

// DefaultDelay asks RequestConfirmation and OfferCancellation to use the
// configured delay. A zero delay means no delay at all.
const DefaultDelay time.Duration = -1

// Basic is the notification and question capability every host has.
type Basic interface {
	Inform(topic, heading, message string) error
	Warn(topic, heading, message string) error
	Complain(topic, heading, message string) error
	AskYesNo(topic, heading, message string) (bool, error)
	AskOkCancel(topic, heading, message string) (bool, error)
	AskYesNoCancel(topic, heading, message string) (Answer, error)
}

// Extended adds multi-choice and timed dialogs.
type Extended interface {
	Basic
	// GiveChoices returns the zero-based index of the chosen label, or
	// ok=false when the user dismissed the dialog.
	GiveChoices(topic, heading, message string, choices []string) (index int, ok bool, err error)
	// RequestConfirmation keeps the confirm control disabled for delay.
	RequestConfirmation(topic, heading, message string, delay time.Duration) (bool, error)
	// OfferCancellation accepts automatically once delay elapses unless
	// the user cancels first.
	OfferCancellation(topic, heading, message string, delay time.Duration) (bool, error)
}

// Service fronts one resolved Backend. Calls are serialized.
type Service struct {
	mu      sync.Mutex
	backend Backend
	tracker WindowTracker
	cfg     Config
	now     func() time.Time
	closed  bool
}

var _ Extended = (*Service)(nil)

// NewService resolves a backend for cfg. tracker may be nil.
func NewService(cfg Config, tracker WindowTracker) (*Service, error) {
	b, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return NewServiceWithBackend(b, cfg, tracker), nil
}

// NewServiceWithBackend wraps an already opened backend.
func NewServiceWithBackend(b Backend, cfg Config, tracker WindowTracker) *Service {
	logInfo("Dialog backend: %s", b.Name())
	return &Service{
		backend: b,
		tracker: tracker,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Backend returns the name of the backend in use.
func (s *Service) Backend() string {
	return s.backend.Name()
}

// Close releases the backend. It is safe to call more than once.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.backend.Close()
}

func (s *Service) Inform(topic, heading, message string) error {
	_, err := s.show(&Dialog{Kind: KindInform, Topic: topic, Heading: heading, Message: message})
	return err
}

func (s *Service) Warn(topic, heading, message string) error {
	_, err := s.show(&Dialog{Kind: KindWarn, Topic: topic, Heading: heading, Message: message})
	return err
}

func (s *Service) Complain(topic, heading, message string) error {
	_, err := s.show(&Dialog{Kind: KindComplain, Topic: topic, Heading: heading, Message: message})
	return err
}

func (s *Service) AskYesNo(topic, heading, message string) (bool, error) {
	b, err := s.show(&Dialog{Kind: KindYesNo, Topic: topic, Heading: heading, Message: message})
	if err != nil {
		return false, err
	}
	return yesNoOutcome(b), nil
}

func (s *Service) AskOkCancel(topic, heading, message string) (bool, error) {
	b, err := s.show(&Dialog{Kind: KindOkCancel, Topic: topic, Heading: heading, Message: message})
	if err != nil {
		return false, err
	}
	return okCancelOutcome(b), nil
}

func (s *Service) AskYesNoCancel(topic, heading, message string) (Answer, error) {
	b, err := s.show(&Dialog{Kind: KindYesNoCancel, Topic: topic, Heading: heading, Message: message})
	if err != nil {
		return AnswerCancel, err
	}
	return yesNoCancelOutcome(b), nil
}

func (s *Service) GiveChoices(topic, heading, message string, choices []string) (int, bool, error) {
	if len(choices) == 0 {
		return -1, false, nil
	}
	labels := append([]string(nil), choices...)
	b, err := s.show(&Dialog{Kind: KindChoices, Topic: topic, Heading: heading, Message: message, Choices: labels})
	if err != nil {
		return -1, false, err
	}
	i, ok := choiceOutcome(b, len(labels))
	return i, ok, nil
}

func (s *Service) RequestConfirmation(topic, heading, message string, delay time.Duration) (bool, error) {
	if delay < 0 {
		delay = s.cfg.ConfirmDelay()
	}
	b, err := s.show(&Dialog{Kind: KindConfirm, Topic: topic, Heading: heading, Message: message, Delay: delay})
	if err != nil {
		return false, err
	}
	return affirmative(b), nil
}

func (s *Service) OfferCancellation(topic, heading, message string, delay time.Duration) (bool, error) {
	if delay < 0 {
		delay = s.cfg.CancelDelay()
	}
	b, err := s.show(&Dialog{Kind: KindCancellable, Topic: topic, Heading: heading, Message: message, Delay: delay})
	if err != nil {
		return false, err
	}
	return affirmative(b), nil
}

// Show displays a fully described dialog and returns the raw button. It
// is the entry point for hosts that build Dialog values themselves.
func (s *Service) Show(d *Dialog) (Button, error) {
	return s.show(d)
}

func (s *Service) show(req *Dialog) (Button, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		logWarn("Dialog %q requested after the service was closed", req.Topic)
		return headlessButton(req.Kind), nil
	}

	// Defaults go on a copy; callers may reuse their Dialog.
	d := *req
	if !d.Parent.Present() && s.tracker != nil {
		d.Parent = s.tracker.ActiveWindow()
	}
	if d.Icon == IconDefault {
		d.Icon = d.Kind.defaultIcon()
	}
	if d.Interval <= 0 {
		d.Interval = s.cfg.TimerInterval()
	}

	name := s.backend.Name()
	b, err := s.dispatch(&d)
	logDialog(name, &d, b, err)
	return b, err
}

func (s *Service) dispatch(d *Dialog) (Button, error) {
	if s.backend.Supports(d.Kind) {
		return s.backend.Show(d)
	}

	switch d.Kind {
	case KindConfirm:
		return gatedConfirm(func(wait time.Duration) (Button, error) {
			q := *d
			q.Kind = KindOkCancel
			if wait > 0 {
				q.Message = waitNote(d.Message, wait)
			}
			return s.backend.Show(&q)
		}, d.Delay, s.now)

	case KindCancellable:
		q := *d
		q.Kind = KindOkCancel
		return s.showUntil(&q, d.Delay)

	case KindChoices:
		logWarn("%s cannot offer choices, %q treated as dismissed", s.backend.Name(), d.Topic)
		return ButtonNone, nil
	}

	logWarn("%s does not support %s dialogs, %q skipped", s.backend.Name(), d.Kind, d.Topic)
	return headlessButton(d.Kind), nil
}

type shown struct {
	button Button
	err    error
}

// showUntil emulates KindCancellable with an ok/cancel question that is
// accepted on the user's behalf once delay passes. The backend cannot
// close its dialog, so a late one stays up and its answer is dropped.
func (s *Service) showUntil(q *Dialog, delay time.Duration) (Button, error) {
	if delay <= 0 {
		return ButtonOK, nil
	}
	done := make(chan shown, 1)
	go func() {
		b, err := s.backend.Show(q)
		done <- shown{b, err}
	}()

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case r := <-done:
		return r.button, r.err
	case <-timer.C:
		logDebug("%s: %q not answered within %v, accepting", s.backend.Name(), q.Topic, delay)
		return ButtonOK, nil
	}
}
