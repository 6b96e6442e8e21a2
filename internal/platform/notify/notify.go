// Package notify sends desktop notifications over the session D-Bus.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	method     = busName + ".Notify"

	appName = "scratchpad"
	// Expiry in milliseconds.
	timeout = 5000
)

// Notifier posts notifications to the freedesktop notification service.
type Notifier struct {
	logger *slog.Logger
	bus    func() (*dbus.Conn, error)
}

// New returns a Notifier using the session bus.
func New(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger, bus: dbus.SessionBus}
}

// Notify shows a notification with summary and body.
func (n *Notifier) Notify(summary, body string) error {
	conn, err := n.bus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	obj := conn.Object(busName, dbus.ObjectPath(objectPath))
	call := obj.Call(method, 0, appName, uint32(0), "", summary, body,
		[]string{}, map[string]dbus.Variant{}, int32(timeout))
	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	n.logger.Debug("notification sent", "summary", summary)
	return nil
}
