package notify

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/domain"
)

// execCommand is swapped out in tests
var execCommand = exec.Command

// OSD renders overlay messages by spawning the dzen2 binary and piping the
// text to its stdin. Fire-and-forget: the renderer closes itself after the
// message delay, the daemon never waits on it.
type OSD struct {
	logger *zap.Logger
	binary string
}

// NewOSD creates the dzen2-backed notifier
func NewOSD(logger *zap.Logger, cfg *config.Config) *OSD {
	return &OSD{logger: logger, binary: cfg.OSD.Binary}
}

// Show spawns one overlay for the message. A missing renderer is a warning,
// anything else an error; the caller proceeds unaffected in both cases.
func (o *OSD) Show(msg domain.Message) {
	align := msg.Align
	if align == "" {
		align = "c"
	}

	args := []string{
		"-ta", align,
		"-fg", msg.Colour,
		"-x", strconv.Itoa(msg.X),
		"-y", strconv.Itoa(msg.Y),
		"-w", strconv.Itoa(msg.Width),
		"-fn", msg.Font,
		"-p", strconv.Itoa(int(msg.Delay.Seconds())),
	}

	cmd := execCommand(o.binary, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		o.logger.Error("OSD: cannot open renderer stdin", zap.Error(err))
		return
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			o.logger.Warn("OSD: renderer not installed, skipping message",
				zap.String("binary", o.binary),
				zap.String("cause", fmt.Sprintf("%v: %v", domain.ErrHelperMissing, err)))
		} else {
			o.logger.Error("OSD: error displaying message", zap.Error(err))
		}
		return
	}

	o.logger.Info("OSD message",
		zap.String("text", msg.Text),
		zap.Int("x", msg.X),
		zap.Int("y", msg.Y),
		zap.Int("width", msg.Width))

	_, _ = io.WriteString(stdin, msg.Text+"\n")
	_ = stdin.Close()
	go func() { _ = cmd.Wait() }()
}
