package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Defaults for everything that is not set in the config file, the
// environment or on the command line.
const (
	defaultMPDHost        = "localhost"
	defaultMPDPort        = 6600
	defaultMPDTimeoutSec  = 5
	defaultPollMS         = 500
	defaultReconnectMS    = 2000
	defaultMaskMS         = 200
	defaultDevice         = "/dev/input/by-id/usb-flirc.tv_flirc-event-kbd"
	defaultRetrySec       = 5
	defaultSeekStepSec    = 10
	defaultOSDBackend     = "dzen2"
	defaultOSDBinary      = "dzen2"
	defaultFont           = "DejaVu Sans-20"
	defaultAlbumFont      = "DejaVu Sans-18:style=Oblique"
	defaultGlyphFont      = "Noto Sans Symbols 2-40"
	defaultColour         = "#20c4bf"
)

// MPDConfig addresses the player's control connection
type MPDConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Addr returns host:port for dialing
func (c MPDConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Timeout bounds every request/response exchange on the link
func (c MPDConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WatchConfig drives the reconciliation loop cadence
type WatchConfig struct {
	PollIntervalMS   int `toml:"poll_interval_ms"`
	ReconnectDelayMS int `toml:"reconnect_delay_ms"`
	MaskIntervalMS   int `toml:"mask_interval_ms"`
}

func (c WatchConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func (c WatchConfig) ReconnectDelay() time.Duration {
	return time.Duration(c.ReconnectDelayMS) * time.Millisecond
}

// MaskInterval is the brief blank pause between tearing down one display
// helper and starting the other
func (c WatchConfig) MaskInterval() time.Duration {
	return time.Duration(c.MaskIntervalMS) * time.Millisecond
}

// RemoteConfig addresses the remote-control input device
type RemoteConfig struct {
	Device          string `toml:"device"`
	RetrySeconds    int    `toml:"retry_seconds"`
	SeekStepSeconds int    `toml:"seek_step_seconds"`
}

func (c RemoteConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetrySeconds) * time.Second
}

// LibraryConfig locates the music library and cover images
type LibraryConfig struct {
	MusicDir      string   `toml:"music_dir"`
	CoverNames    []string `toml:"cover_names"`
	FallbackCover string   `toml:"fallback_cover"`
}

// HelperConfig names one guarded helper process and the argv used to start it
type HelperConfig struct {
	Process string   `toml:"process"`
	Command []string `toml:"command"`
}

// OSDConfig styles the overlay notifications
type OSDConfig struct {
	Backend   string `toml:"backend"` // "dzen2" or "desktop"
	Binary    string `toml:"binary"`
	Font      string `toml:"font"`
	AlbumFont string `toml:"album_font"`
	GlyphFont string `toml:"glyph_font"`
	Colour    string `toml:"colour"`
}

// Config is the full daemon configuration
type Config struct {
	MPD        MPDConfig     `toml:"mpd"`
	Watch      WatchConfig   `toml:"watch"`
	Remote     RemoteConfig  `toml:"remote"`
	Library    LibraryConfig `toml:"library"`
	Visualizer HelperConfig  `toml:"visualizer"`
	Viewer     HelperConfig  `toml:"viewer"`
	OSD        OSDConfig     `toml:"osd"`
}

// New loads the configuration for the fx graph: defaults, then the TOML
// file, then environment variables, then command-line flags.
func New(logger *zap.Logger) (*Config, error) {
	return load(logger, os.Args[1:])
}

func load(logger *zap.Logger, args []string) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("mpdwatch", flag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	configPath := fs.String("config", "", "path to config file")
	mpdHost := fs.String("mpd-host", "", "MPD host")
	mpdPort := fs.Int("mpd-port", 0, "MPD port")
	device := fs.String("input-device", "", "remote input device node")
	musicDir := fs.String("music-dir", "", "music library root")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	path := *configPath
	if path == "" {
		path = os.Getenv("MPDWATCH_CONFIG")
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "mpdwatch", "config.toml")
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			logger.Info("Config file loaded", zap.String("path", path))
		}
	}

	// Environment overrides, same shape as the file
	if v := os.Getenv("MPDWATCH_MPD_HOST"); v != "" {
		cfg.MPD.Host = v
	}
	if v := os.Getenv("MPDWATCH_MPD_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.MPD.Port = p
		}
	}
	if v := os.Getenv("MPDWATCH_INPUT_DEVICE"); v != "" {
		cfg.Remote.Device = v
	}
	if v := os.Getenv("MPDWATCH_MUSIC_DIR"); v != "" {
		cfg.Library.MusicDir = v
	}

	// Flags win over everything
	if *mpdHost != "" {
		cfg.MPD.Host = *mpdHost
	}
	if *mpdPort != 0 {
		cfg.MPD.Port = *mpdPort
	}
	if *device != "" {
		cfg.Remote.Device = *device
	}
	if *musicDir != "" {
		cfg.Library.MusicDir = *musicDir
	}

	cfg.Library.MusicDir = expandHome(cfg.Library.MusicDir)
	cfg.Library.FallbackCover = expandHome(cfg.Library.FallbackCover)
	for i, arg := range cfg.Visualizer.Command {
		cfg.Visualizer.Command[i] = expandHome(arg)
	}

	logger.Info("Configuration loaded",
		zap.String("mpd", cfg.MPD.Addr()),
		zap.String("device", cfg.Remote.Device),
		zap.String("musicDir", cfg.Library.MusicDir))

	return cfg, nil
}

func defaults() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		MPD: MPDConfig{
			Host:           defaultMPDHost,
			Port:           defaultMPDPort,
			TimeoutSeconds: defaultMPDTimeoutSec,
		},
		Watch: WatchConfig{
			PollIntervalMS:   defaultPollMS,
			ReconnectDelayMS: defaultReconnectMS,
			MaskIntervalMS:   defaultMaskMS,
		},
		Remote: RemoteConfig{
			Device:          defaultDevice,
			RetrySeconds:    defaultRetrySec,
			SeekStepSeconds: defaultSeekStepSec,
		},
		Library: LibraryConfig{
			MusicDir:      filepath.Join(home, "Music"),
			CoverNames:    []string{"cover.jpg", "cover.png", "folder.jpg", "front.jpg"},
			FallbackCover: filepath.Join(home, ".config", "mpdwatch", "fallback.png"),
		},
		Visualizer: HelperConfig{
			Process: "cava",
			Command: []string{"rxvt", "+sb", "-bg", "black", "-fg", "white",
				"-e", "cava", "-p", "~/.config/cava/config"},
		},
		Viewer: HelperConfig{
			Process: "feh",
			Command: []string{"feh", "--fullscreen", "--image-bg", "black"},
		},
		OSD: OSDConfig{
			Backend:   defaultOSDBackend,
			Binary:    defaultOSDBinary,
			Font:      defaultFont,
			AlbumFont: defaultAlbumFont,
			GlyphFont: defaultGlyphFont,
			Colour:    defaultColour,
		},
	}
}

// expandHome resolves a leading ~ against the user's home directory
func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
