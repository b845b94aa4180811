package domain

// Player owns the control connection to the music player daemon.
// Implementations must be safe for concurrent use from the watcher and the
// remote listener.
//
//go:generate mockgen -destination=mocks/mocks.go -package=mocks mpdwatch/internal/domain Player,Guard,Notifier,CoverResolver
type Player interface {
	// Connect establishes the control connection
	Connect() error

	// Status returns the transport state together with the raw status
	// attributes from the player. Any failure means the connection is
	// suspect; the caller should route through EnsureConnected.
	Status() (PlaybackState, map[string]string, error)

	// CurrentTrack returns the currently loaded track. Absent tags map to
	// empty fields, never to an error.
	CurrentTrack() (TrackInfo, error)

	// Transport commands. Callers do not retry; the watcher's cadence is
	// the retry mechanism.
	Play() error
	Pause() error
	Stop() error
	Next() error
	Previous() error

	// SeekRelative seeks by the given number of seconds within the
	// current track (negative values seek backwards)
	SeekRelative(seconds int) error

	// EnsureConnected probes the link with a ping and, if that fails,
	// attempts exactly one reconnect. It leaves the link unhealthy for the
	// next tick when both fail.
	EnsureConnected() error
}

// Guard controls named external helper processes (visualizer, cover viewer).
// Processes are tracked by executable name only, never by handle.
type Guard interface {
	// IsRunning reports whether a process with the given executable name
	// exists. Lookup errors report false.
	IsRunning(name string) bool

	// Start launches argv detached. It never waits for the process to
	// exit. A missing executable is reported as ErrHelperMissing.
	Start(name string, argv []string) error

	// Stop terminates the named process best-effort. Absent processes are
	// not an error.
	Stop(name string)
}

// Notifier emits short-lived overlay messages. Failures are logged and
// swallowed; callers proceed unaffected.
type Notifier interface {
	Show(msg Message)
}

// CoverResolver maps a track to the album cover image to display
type CoverResolver interface {
	// Resolve returns the path of the cover image for the track's album
	// directory, or the configured fallback image when none exists
	Resolve(t TrackInfo) string
}
