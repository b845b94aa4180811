// Package notify emits short-lived overlay messages. Two backends exist: a
// dzen2 OSD spawned per message (the default) and the freedesktop session
// notification service. Either way, emission is fire-and-forget and every
// failure is swallowed after logging.
package notify

import (
	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/domain"
)

// New selects the configured notifier backend. An unreachable session bus
// falls back to the OSD so the daemon always has somewhere to send messages.
func New(logger *zap.Logger, cfg *config.Config) domain.Notifier {
	if cfg.OSD.Backend == "desktop" {
		d, err := NewDesktop(logger)
		if err == nil {
			return d
		}
		logger.Warn("Session bus unavailable, falling back to OSD backend",
			zap.Error(err))
	}
	return NewOSD(logger, cfg)
}
