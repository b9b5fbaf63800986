package notify

// Severity classifies a notification for display styling.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Sink receives fire-and-forget user-visible notifications. Implementations
// must not block; there is no acknowledgment path.
type Sink interface {
	Notify(message string, severity Severity)
}

// Func adapts a plain function to the Sink interface.
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) {
	f(message, severity)
}

// Discard is a Sink that drops every notification.
var Discard Sink = Func(func(string, Severity) {})

// Memory collects notifications in order. Used in tests and by the stats
// command, where there is no live UI to toast into.
type Memory struct {
	Messages []Message
}

// Message is a recorded notification.
type Message struct {
	Text     string
	Severity Severity
}

func (m *Memory) Notify(message string, severity Severity) {
	m.Messages = append(m.Messages, Message{Text: message, Severity: severity})
}
