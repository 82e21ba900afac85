package round

import "time"

type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Message is the transient text shown with a pulse.
func (f Feedback) Message() string {
	switch f {
	case FeedbackCorrect:
		return "Correct!"
	case FeedbackIncorrect:
		return "Wrong!"
	default:
		return ""
	}
}

// Pulse is a transient visual state that is active until a deadline. A newer
// pulse simply replaces an older one.
type Pulse struct {
	Kind  Feedback
	Until time.Time
}

func (p Pulse) Active(now time.Time) bool {
	return p.Kind != FeedbackNone && now.Before(p.Until)
}
