package domain

import "errors"

// Error taxonomy for the daemon. All of these are caught at the nearest loop
// boundary (one watcher tick, one device-open attempt) and converted to a log
// record plus a bounded retry; none terminate the owning task.
var (
	// ErrConnection reports that the control link could not be established
	ErrConnection = errors.New("player connection failed")
	// ErrQuery reports a failed status or track query on an established link
	ErrQuery = errors.New("player query failed")
	// ErrCommand reports a failed transport command on an established link
	ErrCommand = errors.New("player command failed")
	// ErrReconnect reports that both the liveness probe and the redial failed
	ErrReconnect = errors.New("player reconnect failed")
	// ErrDeviceUnavailable reports a missing or unreadable input device
	ErrDeviceUnavailable = errors.New("input device unavailable")
	// ErrHelperMissing reports that a helper program's executable is absent
	ErrHelperMissing = errors.New("helper program not installed")
)
