// Package watcher runs the reconciliation loop: poll the player at a fixed
// cadence, diff the observed state against the last tick, and drive
// notifications and the display helpers from the differences.
package watcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/domain"
)

// Transport glyphs shown on state changes
const (
	glyphPlay  = "▶"
	glyphPause = "⏸"
	glyphStop  = "◼"
)

// Memory is the loop's working set. It is owned exclusively by the watcher
// and committed only after the tick's side effects have been issued, so a
// crash mid-tick leaves effects done and memory stale, never the reverse.
type Memory struct {
	State domain.PlaybackState
	Track domain.TrackInfo
	Title string
	Album string
	Cover string
}

// Watcher is the top-level control loop
type Watcher struct {
	logger *zap.Logger
	cfg    *config.Config
	player domain.Player
	guard  domain.Guard
	osd    domain.Notifier
	covers domain.CoverResolver

	mem         Memory
	coverNeeded bool
	// reconnectFailures counts consecutive failed recovery attempts; two in
	// a row force an extra delay so a dead player does not produce a hot
	// failure loop
	reconnectFailures int

	sleep func(time.Duration) // stubbed in tests
}

// New creates the watcher. It does not start polling; call Run.
func New(
	logger *zap.Logger,
	cfg *config.Config,
	player domain.Player,
	guard domain.Guard,
	osd domain.Notifier,
	covers domain.CoverResolver,
) *Watcher {
	return &Watcher{
		logger: logger,
		cfg:    cfg,
		player: player,
		guard:  guard,
		osd:    osd,
		covers: covers,
		mem:    Memory{State: domain.StateUnknown},
		sleep:  time.Sleep,
	}
}

// Run polls until the context is cancelled. Every per-tick failure is
// absorbed; the loop itself never terminates on error.
func (w *Watcher) Run(ctx context.Context) {
	w.logger.Info("Watcher started",
		zap.Duration("pollInterval", w.cfg.Watch.PollInterval()))

	ticker := time.NewTicker(w.cfg.Watch.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher stopped")
			return
		case <-ticker.C:
			w.tick()
			if w.reconnectFailures >= 2 {
				w.sleep(w.cfg.Watch.ReconnectDelay())
			}
		}
	}
}

// tick performs one observe-diff-act cycle
func (w *Watcher) tick() {
	state, raw, err := w.player.Status()
	var track domain.TrackInfo
	if err == nil {
		track, err = w.player.CurrentTrack()
	}
	if err != nil {
		w.logger.Error("Player query failed", zap.Error(err))
		w.recover()
		return
	}
	w.reconnectFailures = 0

	// Song identity change is logged only; title and state diffs below are
	// the actionable signals.
	if track != w.mem.Track {
		w.logger.Info("Current song changed",
			zap.String("file", track.File),
			zap.String("title", track.Title),
			zap.String("lastTitle", w.mem.Track.Title))
	}

	if track.Title != "" && track.Title != w.mem.Title {
		w.notifyNowPlaying(track)
	}

	if state != w.mem.State {
		w.logger.Info("Playback state changed",
			zap.String("state", string(state)),
			zap.String("lastState", string(w.mem.State)),
			zap.Any("status", raw))
		w.notifyGlyph(state)

		if state == domain.StatePlaying {
			w.startVisualizer()
			w.coverNeeded = false
		} else {
			w.guard.Stop(w.cfg.Visualizer.Process)
			w.coverNeeded = true
		}
	}

	// Cover viewer policy: only when playback is not active, and only on an
	// album change or a state transition that just tore the visualizer
	// down. A bare stopped tick with nothing changed leaves the viewer
	// alone.
	if state != domain.StatePlaying && (w.coverNeeded || track.Album != w.mem.Album) {
		coverPath := w.covers.Resolve(track)
		if coverPath != w.mem.Cover || !w.guard.IsRunning(w.cfg.Viewer.Process) {
			w.showCover(coverPath)
		}
		w.mem.Cover = coverPath
		w.coverNeeded = false
	}

	w.mem.State = state
	w.mem.Track = track
	if track.Title != "" {
		// An empty title never clears the last-shown one: a transient
		// tagless tick must not cause a duplicate notification later.
		w.mem.Title = track.Title
	}
	w.mem.Album = track.Album
}

// recover runs the tick-bounded reconnect path after a failed query
func (w *Watcher) recover() {
	if err := w.player.EnsureConnected(); err != nil {
		w.reconnectFailures++
		w.logger.Error("Reconnect failed",
			zap.Error(err),
			zap.Int("consecutiveFailures", w.reconnectFailures))
		return
	}
	w.reconnectFailures = 0
}

// notifyNowPlaying emits the two-line track notification: performer and
// title first, album underneath when present
func (w *Watcher) notifyNowPlaying(track domain.TrackInfo) {
	line1 := track.Title
	if track.Artist != "" {
		line1 = fmt.Sprintf("%s - %s", track.Artist, track.Title)
	}
	w.osd.Show(domain.Message{
		Text:   line1,
		X:      0,
		Y:      0,
		Width:  800,
		Colour: w.cfg.OSD.Colour,
		Font:   w.cfg.OSD.Font,
		Delay:  4 * time.Second,
	})

	if track.Album != "" {
		w.osd.Show(domain.Message{
			Text:   track.Album,
			X:      0,
			Y:      30,
			Width:  800,
			Colour: w.cfg.OSD.Colour,
			Font:   w.cfg.OSD.AlbumFont,
			Delay:  4 * time.Second,
		})
	}
}

// notifyGlyph emits the transport-state glyph for the new state
func (w *Watcher) notifyGlyph(state domain.PlaybackState) {
	var glyph string
	switch state {
	case domain.StatePlaying:
		glyph = glyphPlay
	case domain.StatePaused:
		glyph = glyphPause
	case domain.StateStopped:
		glyph = glyphStop
	default:
		return
	}
	w.osd.Show(domain.Message{
		Text:   glyph,
		X:      370,
		Y:      100,
		Width:  60,
		Colour: "white",
		Font:   w.cfg.OSD.GlyphFont,
		Delay:  2 * time.Second,
	})
}

// startVisualizer brings up the visualizer, claiming the display first. A
// visualizer that is already running is left untouched.
func (w *Watcher) startVisualizer() {
	if w.guard.IsRunning(w.cfg.Visualizer.Process) {
		w.logger.Debug("Visualizer already running")
		return
	}
	w.claimDisplay()
	if err := w.guard.Start(w.cfg.Visualizer.Process, w.cfg.Visualizer.Command); err != nil {
		w.logger.Error("Failed to start visualizer", zap.Error(err))
	}
}

// showCover brings up the cover viewer on the given image, claiming the
// display first. Callers suppress redundant restarts; reaching this method
// means the viewer must be (re)started.
func (w *Watcher) showCover(path string) {
	w.claimDisplay()
	argv := append(append([]string{}, w.cfg.Viewer.Command...), path)
	if err := w.guard.Start(w.cfg.Viewer.Process, argv); err != nil {
		w.logger.Error("Failed to start cover viewer", zap.Error(err))
		return
	}
	w.logger.Info("Cover viewer started", zap.String("image", path))
}

// claimDisplay tears down whichever helper holds the display surface:
// visualizer first, a brief mask interval, then the viewer. Keeps the two
// from fighting over the same screen.
func (w *Watcher) claimDisplay() {
	w.guard.Stop(w.cfg.Visualizer.Process)
	w.sleep(w.cfg.Watch.MaskInterval())
	w.guard.Stop(w.cfg.Viewer.Process)
}
