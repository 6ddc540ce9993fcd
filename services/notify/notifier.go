package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier is the user-facing notification capability. Orchestration
// components surface each failed operation exactly once through it; injecting
// the capability keeps the scheduling engine free of any UI runtime.
type Notifier interface {
	Notify(message string)
}

// LogNotifier reports notifications through the service log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) Notify(message string) {
	n.Logger.Warn("user notification", zap.String("message", message))
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of everything notified so far.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}
