// Package remote reads the remote-control input device and turns key presses
// into transport commands on the player link. It runs for the lifetime of
// the daemon, surviving a missing or hot-plugged device by retrying the
// open-and-read cycle forever.
package remote

import (
	"context"
	"fmt"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/domain"
)

// Device is the minimal evdev surface the listener needs. Abstracted so
// tests can feed scripted events instead of a kernel device node.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// openDevice is swapped out in tests
var openDevice = func(path string) (Device, error) {
	return evdev.Open(path)
}

// keymap fixes which physical buttons are recognized
var keymap = map[evdev.EvCode]domain.RemoteKey{
	evdev.KEY_PLAYPAUSE:    domain.KeyPlay,
	evdev.KEY_PLAYCD:       domain.KeyPlay,
	evdev.KEY_PAUSECD:      domain.KeyPause,
	evdev.KEY_NEXTSONG:     domain.KeyNext,
	evdev.KEY_PREVIOUSSONG: domain.KeyPrevious,
	evdev.KEY_STOPCD:       domain.KeyStop,
	evdev.KEY_FORWARD:      domain.KeyFastForward,
	evdev.KEY_FASTFORWARD:  domain.KeyFastForward,
	evdev.KEY_REWIND:       domain.KeyRewind,
}

// Listener dispatches remote key presses as player commands
type Listener struct {
	logger *zap.Logger
	cfg    *config.Config
	player domain.Player
	osd    domain.Notifier

	sleep func(time.Duration) // stubbed in tests
}

// New creates the listener. It does not open the device; call Run.
func New(logger *zap.Logger, cfg *config.Config, player domain.Player, osd domain.Notifier) *Listener {
	return &Listener{
		logger: logger,
		cfg:    cfg,
		player: player,
		osd:    osd,
		sleep:  time.Sleep,
	}
}

// Run opens the device and reads events until the context is cancelled.
// Open failures and mid-read errors both restart the cycle after a fixed
// backoff; the listener never exits on its own.
func (l *Listener) Run(ctx context.Context) {
	path := l.cfg.Remote.Device
	backoff := l.cfg.Remote.RetryDelay()

	for {
		if ctx.Err() != nil {
			l.logger.Info("Remote listener stopped")
			return
		}

		dev, err := openDevice(path)
		if err != nil {
			l.logger.Warn("Input device unavailable, retrying",
				zap.String("device", path),
				zap.Duration("backoff", backoff),
				zap.String("cause", fmt.Sprintf("%v: %v", domain.ErrDeviceUnavailable, err)))
			l.sleep(backoff)
			continue
		}

		l.logger.Info("Listening on input device", zap.String("device", path))
		l.readLoop(ctx, dev)
		_ = dev.Close()
		l.sleep(backoff)
	}
}

// readLoop consumes events until the device errors or the context ends
func (l *Listener) readLoop(ctx context.Context, dev Device) {
	for {
		if ctx.Err() != nil {
			return
		}
		ev, err := dev.ReadOne()
		if err != nil {
			l.logger.Warn("Input read failed, reopening device", zap.Error(err))
			return
		}
		l.handleEvent(ev)
	}
}

// handleEvent filters to key-press events on recognized codes and
// dispatches. Releases and autorepeats are ignored: exactly one command per
// physical press.
func (l *Listener) handleEvent(ev *evdev.InputEvent) {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != 1 {
		return
	}
	key, ok := keymap[ev.Code]
	if !ok {
		return
	}
	l.dispatch(key)
}

// dispatch issues the player command for one key press. Command failures
// are logged and dropped; the watcher's reconnect path owns recovery.
func (l *Listener) dispatch(key domain.RemoteKey) {
	l.logger.Info("Remote key", zap.Stringer("key", key))

	var err error
	switch key {
	case domain.KeyPlay:
		err = l.togglePlayback()
	case domain.KeyPause:
		err = l.player.Pause()
	case domain.KeyNext:
		err = l.player.Next()
	case domain.KeyPrevious:
		err = l.player.Previous()
	case domain.KeyStop:
		err = l.player.Stop()
	case domain.KeyFastForward:
		err = l.seek(l.cfg.Remote.SeekStepSeconds)
	case domain.KeyRewind:
		err = l.seek(-l.cfg.Remote.SeekStepSeconds)
	}
	if err != nil {
		l.logger.Error("Remote command failed",
			zap.Stringer("key", key), zap.Error(err))
	}
}

// togglePlayback fetches the state fresh at dispatch time: play pauses,
// anything else plays
func (l *Listener) togglePlayback() error {
	state, _, err := l.player.Status()
	if err == nil && state == domain.StatePlaying {
		return l.player.Pause()
	}
	return l.player.Play()
}

// seek issues a relative seek and flashes the offset on screen
func (l *Listener) seek(seconds int) error {
	if err := l.player.SeekRelative(seconds); err != nil {
		return err
	}
	l.osd.Show(domain.Message{
		Text:   fmt.Sprintf("%+ds", seconds),
		X:      370,
		Y:      100,
		Width:  100,
		Colour: "white",
		Font:   l.cfg.OSD.Font,
		Delay:  time.Second,
	})
	return nil
}
