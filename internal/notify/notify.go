package notify

import (
	"time"

	"github.com/charmbracelet/log"
)

// Severity grades a notification for display.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notifier is the toast/message surface. Fire-and-forget: callers never rely
// on a return value. The duration is a display hint only.
type Notifier interface {
	Notify(msg string, sev Severity, d time.Duration)
}

// LogNotifier routes notifications to a structured logger, the notification
// surface for the non-interactive CLI commands.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(msg string, sev Severity, d time.Duration) {
	switch sev {
	case Error:
		n.logger.Error(msg)
	case Warn:
		n.logger.Warn(msg)
	default:
		n.logger.Info(msg)
	}
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(string, Severity, time.Duration) {}
