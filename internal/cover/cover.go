package cover

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/domain"
)

// Resolver maps a track to the cover image shown while playback is paused or
// stopped. The album directory is derived from the library root plus the
// track's relative file path; the first matching cover filename wins.
// Stateless: the result is recomputed on every call.
type Resolver struct {
	logger   *zap.Logger
	musicDir string
	names    []string
	fallback string
}

// New creates a resolver over the configured music library
func New(logger *zap.Logger, cfg *config.Config) *Resolver {
	return &Resolver{
		logger:   logger,
		musicDir: cfg.Library.MusicDir,
		names:    cfg.Library.CoverNames,
		fallback: cfg.Library.FallbackCover,
	}
}

// Resolve returns the album cover path for the track, or the fallback image
// when the track has no file path or no cover exists on disk
func (r *Resolver) Resolve(t domain.TrackInfo) string {
	if t.File == "" {
		return r.fallback
	}

	albumDir := filepath.Dir(filepath.Join(r.musicDir, t.File))
	for _, name := range r.names {
		path := filepath.Join(albumDir, name)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}

	r.logger.Debug("No cover found, using fallback",
		zap.String("albumDir", albumDir))
	return r.fallback
}
