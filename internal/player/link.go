package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/fhs/gompd/v2/mpd"
	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/domain"
)

// Link owns the MPD control connection. It is shared between the watcher and
// the remote listener: a single mutex serializes every request/response
// exchange, held never longer than one call (bounded by the configured
// timeout).
type Link struct {
	logger  *zap.Logger
	addr    string
	timeout time.Duration

	mu   sync.Mutex
	conn *mpd.Client
}

// New creates an unconnected link to the player at the configured address
func New(logger *zap.Logger, cfg *config.Config) *Link {
	return &Link{
		logger:  logger,
		addr:    cfg.MPD.Addr(),
		timeout: cfg.MPD.Timeout(),
	}
}

// Connect establishes the control connection
func (l *Link) Connect() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		return nil
	}
	conn, err := mpd.Dial("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", domain.ErrConnection, l.addr, err)
	}
	l.conn = conn
	l.logger.Info("Connected to MPD", zap.String("addr", l.addr))
	return nil
}

// Status returns the transport state and the raw status attributes
func (l *Link) Status() (domain.PlaybackState, map[string]string, error) {
	var attrs mpd.Attrs
	err := l.do(domain.ErrQuery, "status", func(c *mpd.Client) error {
		var e error
		attrs, e = c.Status()
		return e
	})
	if err != nil {
		return domain.StateUnknown, nil, err
	}
	return ParseState(attrs["state"]), attrs, nil
}

// CurrentTrack returns the currently loaded track. Missing tags are empty.
func (l *Link) CurrentTrack() (domain.TrackInfo, error) {
	var attrs mpd.Attrs
	err := l.do(domain.ErrQuery, "currentsong", func(c *mpd.Client) error {
		var e error
		attrs, e = c.CurrentSong()
		return e
	})
	if err != nil {
		return domain.TrackInfo{}, err
	}
	return domain.TrackInfo{
		Title:  attrs["Title"],
		Artist: attrs["Artist"],
		Album:  attrs["Album"],
		File:   attrs["file"],
	}, nil
}

// Play resumes or starts playback of the current queue position
func (l *Link) Play() error {
	return l.do(domain.ErrCommand, "play", func(c *mpd.Client) error {
		return c.Play(-1)
	})
}

// Pause pauses playback
func (l *Link) Pause() error {
	return l.do(domain.ErrCommand, "pause", func(c *mpd.Client) error {
		return c.Pause(true)
	})
}

// Stop stops playback
func (l *Link) Stop() error {
	return l.do(domain.ErrCommand, "stop", func(c *mpd.Client) error {
		return c.Stop()
	})
}

// Next skips to the next queue entry
func (l *Link) Next() error {
	return l.do(domain.ErrCommand, "next", func(c *mpd.Client) error {
		return c.Next()
	})
}

// Previous skips to the previous queue entry
func (l *Link) Previous() error {
	return l.do(domain.ErrCommand, "previous", func(c *mpd.Client) error {
		return c.Previous()
	})
}

// SeekRelative seeks within the current track by the given signed offset
func (l *Link) SeekRelative(seconds int) error {
	return l.do(domain.ErrCommand, "seekcur", func(c *mpd.Client) error {
		return c.SeekCur(time.Duration(seconds)*time.Second, true)
	})
}

// EnsureConnected probes the link with one ping and falls back to exactly
// one redial. Called by the watcher after any query failure and by main at
// startup; safe to call while the link is healthy.
func (l *Link) EnsureConnected() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		if err := l.callLocked(func(c *mpd.Client) error { return c.Ping() }); err == nil {
			return nil
		}
		// A timed-out probe already dropped the connection inside callLocked.
		if l.conn != nil {
			l.conn.Close()
			l.conn = nil
		}
	}

	conn, err := mpd.Dial("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", domain.ErrReconnect, l.addr, err)
	}
	l.conn = conn
	l.logger.Info("Reconnected to MPD", zap.String("addr", l.addr))
	return nil
}

// do runs one exchange under the lock with a bounded timeout. A timeout
// closes and drops the connection so the abandoned call errors out against
// the closed socket instead of leaking a wedged client.
func (l *Link) do(kind error, op string, fn func(*mpd.Client) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn == nil {
		return fmt.Errorf("%w: %s: not connected", kind, op)
	}
	if err := l.callLocked(fn); err != nil {
		return fmt.Errorf("%w: %s: %v", kind, op, err)
	}
	return nil
}

// callLocked executes fn against the current connection, enforcing the
// timeout. Caller must hold l.mu.
func (l *Link) callLocked(fn func(*mpd.Client) error) error {
	conn := l.conn
	done := make(chan error, 1)
	go func() {
		done <- fn(conn)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(l.timeout):
		conn.Close()
		l.conn = nil
		l.logger.Warn("MPD call timed out, dropping connection",
			zap.Duration("timeout", l.timeout))
		return fmt.Errorf("timeout after %s", l.timeout)
	}
}

// ParseState maps MPD's state attribute onto the domain enum
func ParseState(state string) domain.PlaybackState {
	switch state {
	case "play":
		return domain.StatePlaying
	case "pause":
		return domain.StatePaused
	case "stop":
		return domain.StateStopped
	default:
		return domain.StateUnknown
	}
}
