package notify

import (
	"time"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"mpdwatch/internal/domain"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
)

// DesktopConn is the minimal D-Bus surface the desktop notifier needs.
// Abstracted so tests can stub the session bus away.
type DesktopConn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

// Desktop forwards messages to the session notification service instead of
// drawing an overlay. Useful on desktops without a bare-X OSD renderer.
type Desktop struct {
	logger *zap.Logger
	conn   DesktopConn
}

// NewDesktop connects to the session bus
func NewDesktop(logger *zap.Logger) (*Desktop, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &Desktop{logger: logger, conn: conn}, nil
}

// Show posts one desktop notification. Failures are logged and swallowed.
func (d *Desktop) Show(msg domain.Message) {
	obj := d.conn.Object(notifyDest, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		"mpdwatch",          // app_name
		uint32(0),           // replaces_id
		"",                  // app_icon
		msg.Text,            // summary
		"",                  // body
		[]string{},          // actions
		map[string]dbus.Variant{},
		int32(msg.Delay/time.Millisecond))
	if call.Err != nil {
		d.logger.Error("Desktop notification failed", zap.Error(call.Err))
		return
	}
	d.logger.Info("Desktop notification", zap.String("text", msg.Text))
}
