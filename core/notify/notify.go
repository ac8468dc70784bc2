// Package notify defines the user-facing notification events raised by a
// session and the Notifier interface that displays them.
package notify

// Kind is the notification severity
type Kind string

const (
	KindError Kind = "error"
	KindInfo  Kind = "info"
)

// Standard notification texts
const (
	TitleError         = "Error"
	TitleExportStarted = "Export Started"

	MessageNoSelection = "Please select at least one technology"
)

// Notification is a single user-facing event
type Notification struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Error builds an error notification
func Error(message string) Notification {
	return Notification{Kind: KindError, Title: TitleError, Message: message}
}

// ExportStarted builds the info notification raised when export begins.
// label is the human name of the document format, e.g. "PDF".
func ExportStarted(label string) Notification {
	return Notification{
		Kind:    KindInfo,
		Title:   TitleExportStarted,
		Message: "Your " + label + " is being generated...",
	}
}

// Notifier displays notifications
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to Notifier
type Func func(Notification)

// Notify calls f(n)
func (f Func) Notify(n Notification) {
	f(n)
}

// Discard drops every notification
var Discard Notifier = Func(func(Notification) {})

// Recorder keeps notifications in order. Used by tests and by callers that
// render notifications after the fact.
type Recorder struct {
	events []Notification
}

// Notify records n
func (r *Recorder) Notify(n Notification) {
	r.events = append(r.events, n)
}

// Events returns the recorded notifications
func (r *Recorder) Events() []Notification {
	out := make([]Notification, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	if len(r.events) == 0 {
		return Notification{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset drops recorded notifications
func (r *Recorder) Reset() {
	r.events = nil
}
