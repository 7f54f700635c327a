package msgdlg

// Answer is the outcome of a yes/no/cancel question.
type Answer int

const (
	AnswerCancel Answer = iota
	AnswerNo
	AnswerYes
)

// Bool returns the answer as a boolean; ok is false for AnswerCancel.
func (a Answer) Bool() (value, ok bool) {
	switch a {
	case AnswerYes:
		return true, true
	case AnswerNo:
		return false, true
	}
	return false, false
}

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	}
	return "cancel"
}

// Cancel, abort, close and anything unrecognised fold into "no" / absent.

func yesNoOutcome(b Button) bool {
	return b == ButtonYes
}

func okCancelOutcome(b Button) bool {
	return b == ButtonOK
}

func yesNoCancelOutcome(b Button) Answer {
	switch b {
	case ButtonYes:
		return AnswerYes
	case ButtonNo:
		return AnswerNo
	}
	return AnswerCancel
}

func choiceOutcome(b Button, n int) (int, bool) {
	if b < ChoiceBase {
		return -1, false
	}
	i := int(b - ChoiceBase)
	if i >= n {
		return -1, false
	}
	return i, true
}

// affirmative covers both the confirm and the offer-cancellation kinds.
func affirmative(b Button) bool {
	return b == ButtonOK || b == ButtonYes
}
