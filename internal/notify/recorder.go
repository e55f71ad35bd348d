package notify

import "time"

// Message is one recorded notification.
type Message struct {
	Text     string
	Severity Severity
	Duration time.Duration
}

// Recorder keeps notifications in memory. Used by tests and as the toast
// backing store for the interactive UI.
type Recorder struct {
	Messages []Message
}

func (r *Recorder) Notify(msg string, sev Severity, d time.Duration) {
	r.Messages = append(r.Messages, Message{Text: msg, Severity: sev, Duration: d})
}

// Last returns the most recent message, if any.
func (r *Recorder) Last() (Message, bool) {
	if len(r.Messages) == 0 {
		return Message{}, false
	}
	return r.Messages[len(r.Messages)-1], true
}

func (r *Recorder) Clear() { r.Messages = nil }
