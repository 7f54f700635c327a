package output

import (
	"fmt"
	"time"

	"msgdlg"
)

// Request is one dialog described by kind, as the CLI and the tray
// configuration name it.
type Request struct {
	Kind    msgdlg.Kind
	Topic   string
	Heading string
	Message string
	Choices []string
	Delay   time.Duration // for the timed kinds; msgdlg.DefaultDelay uses the configured one
}

// Reply is the answer to a Request.
type Reply struct {
	Answer   string      // ok, yes, no, cancel, chosen or dismissed
	Value    interface{} // bool, the chosen index, or nil when absent
	Choice   string      // the chosen label
	Accepted bool
}

// Text is the answer in one word, or the chosen label.
func (r Reply) Text() string {
	if r.Choice != "" {
		return r.Choice
	}
	return r.Answer
}

func boolReply(v bool, yes, no string) Reply {
	if v {
		return Reply{Answer: yes, Value: true, Accepted: true}
	}
	return Reply{Answer: no, Value: false}
}

// Ask shows r through d.
func Ask(d msgdlg.Extended, r Request) (Reply, error) {
	switch r.Kind {
	case msgdlg.KindInform, msgdlg.KindWarn, msgdlg.KindComplain:
		notify := d.Inform
		switch r.Kind {
		case msgdlg.KindWarn:
			notify = d.Warn
		case msgdlg.KindComplain:
			notify = d.Complain
		}
		return boolReply(true, "ok", ""), notify(r.Topic, r.Heading, r.Message)

	case msgdlg.KindYesNo:
		v, err := d.AskYesNo(r.Topic, r.Heading, r.Message)
		return boolReply(v, "yes", "no"), err

	case msgdlg.KindOkCancel:
		v, err := d.AskOkCancel(r.Topic, r.Heading, r.Message)
		return boolReply(v, "ok", "cancel"), err

	case msgdlg.KindYesNoCancel:
		a, err := d.AskYesNoCancel(r.Topic, r.Heading, r.Message)
		reply := Reply{Answer: a.String()}
		if v, ok := a.Bool(); ok {
			reply.Value, reply.Accepted = v, v
		}
		return reply, err

	case msgdlg.KindChoices:
		i, ok, err := d.GiveChoices(r.Topic, r.Heading, r.Message, r.Choices)
		if err != nil || !ok {
			return Reply{Answer: "dismissed"}, err
		}
		return Reply{Answer: "chosen", Value: i, Choice: r.Choices[i], Accepted: true}, nil

	case msgdlg.KindConfirm:
		v, err := d.RequestConfirmation(r.Topic, r.Heading, r.Message, r.Delay)
		return boolReply(v, "ok", "cancel"), err

	case msgdlg.KindCancellable:
		v, err := d.OfferCancellation(r.Topic, r.Heading, r.Message, r.Delay)
		return boolReply(v, "ok", "cancel"), err
	}
	return Reply{}, fmt.Errorf("unsupported kind %s", r.Kind)
}
