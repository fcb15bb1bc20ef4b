// Package notify carries transient, one-shot user-facing notifications:
// validation failures, generation outcomes, timestamp warnings. A rendering
// surface subscribes by implementing Notifier; messages are fire-and-forget
// with no history beyond what a subscriber chooses to keep.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Level tags a notification for the rendering surface.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notification is a single auto-dismissing message.
type Notification struct {
	Message string
	Level   Level
}

// Notifier receives notifications as they happen.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a plain function to the Notifier interface.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

// Writer prints notifications as CLI status lines.
type Writer struct {
	Out io.Writer
}

func (w *Writer) Notify(n Notification) {
	marker := "*"
	switch n.Level {
	case LevelError:
		marker = "!"
	case LevelWarning:
		marker = "~"
	}
	fmt.Fprintf(w.Out, "[%s] %s\n", marker, n.Message)
}

// Recorder keeps notifications in arrival order for inspection. Safe for
// concurrent use.
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.list = append(r.list, n)
	r.mu.Unlock()
}

// All returns a copy of every recorded notification in order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.list))
	copy(out, r.list)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.list) == 0 {
		return Notification{}, false
	}
	return r.list[len(r.list)-1], true
}
