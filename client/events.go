package client

import (
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
)

// Publisher delivers typed events to every attached UI. The hub is the
// production implementation; tests substitute a recorder.
type Publisher interface {
	Publish(t protocol.MessageType, payload interface{})
}

// Notification levels.
const (
	levelInfo    = "info"
	levelSuccess = "success"
	levelError   = "error"
)

// toast publishes a transient notification to the UI.
func toast(pub Publisher, level, message string) {
	pub.Publish(protocol.TypeNotification, protocol.NotificationEvent{
		Message: message,
		Level:   level,
	})
}
