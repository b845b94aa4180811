package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

// missingConfig points --config at a path that does not exist so tests never
// pick up a developer's real config file.
func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestDefaults(t *testing.T) {
	cfg, err := load(zap.NewNop(), []string{"--config", missingConfig(t)})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.MPD.Addr() != "localhost:6600" {
		t.Errorf("mpd addr = %q", cfg.MPD.Addr())
	}
	if cfg.MPD.Timeout() != 5*time.Second {
		t.Errorf("mpd timeout = %s", cfg.MPD.Timeout())
	}
	if cfg.Watch.PollInterval() != 500*time.Millisecond {
		t.Errorf("poll interval = %s", cfg.Watch.PollInterval())
	}
	if cfg.Visualizer.Process != "cava" || cfg.Viewer.Process != "feh" {
		t.Errorf("helper defaults = %q / %q", cfg.Visualizer.Process, cfg.Viewer.Process)
	}
	if len(cfg.Library.CoverNames) == 0 {
		t.Error("no default cover names")
	}
	if cfg.Remote.SeekStepSeconds != 10 {
		t.Errorf("seek step = %d", cfg.Remote.SeekStepSeconds)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[mpd]
host = "jukebox"
port = 6601

[remote]
device = "/dev/input/event7"
seek_step_seconds = 30

[library]
music_dir = "/srv/music"

[osd]
backend = "desktop"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(zap.NewNop(), []string{"--config", path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.MPD.Addr() != "jukebox:6601" {
		t.Errorf("mpd addr = %q", cfg.MPD.Addr())
	}
	if cfg.Remote.Device != "/dev/input/event7" {
		t.Errorf("device = %q", cfg.Remote.Device)
	}
	if cfg.Remote.SeekStepSeconds != 30 {
		t.Errorf("seek step = %d", cfg.Remote.SeekStepSeconds)
	}
	if cfg.Library.MusicDir != "/srv/music" {
		t.Errorf("music dir = %q", cfg.Library.MusicDir)
	}
	if cfg.OSD.Backend != "desktop" {
		t.Errorf("osd backend = %q", cfg.OSD.Backend)
	}
	// Untouched sections keep their defaults.
	if cfg.Watch.PollInterval() != 500*time.Millisecond {
		t.Errorf("poll interval = %s", cfg.Watch.PollInterval())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MPDWATCH_MPD_HOST", "envhost")
	t.Setenv("MPDWATCH_MPD_PORT", "7700")
	t.Setenv("MPDWATCH_MUSIC_DIR", "/env/music")

	cfg, err := load(zap.NewNop(), []string{"--config", missingConfig(t)})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.MPD.Addr() != "envhost:7700" {
		t.Errorf("mpd addr = %q", cfg.MPD.Addr())
	}
	if cfg.Library.MusicDir != "/env/music" {
		t.Errorf("music dir = %q", cfg.Library.MusicDir)
	}
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Setenv("MPDWATCH_MPD_HOST", "envhost")

	cfg, err := load(zap.NewNop(), []string{
		"--config", missingConfig(t),
		"--mpd-host", "flaghost",
		"--mpd-port", "6602",
		"--input-device", "/dev/input/event9",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.MPD.Addr() != "flaghost:6602" {
		t.Errorf("mpd addr = %q", cfg.MPD.Addr())
	}
	if cfg.Remote.Device != "/dev/input/event9" {
		t.Errorf("device = %q", cfg.Remote.Device)
	}
}

func TestUnknownFlagsTolerated(t *testing.T) {
	_, err := load(zap.NewNop(), []string{
		"--config", missingConfig(t),
		"--test.v", "--totally-unknown=1",
	})
	if err != nil {
		t.Fatalf("load with unknown flags: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/Music"); got != filepath.Join(home, "Music") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("expandHome should leave absolute paths alone, got %q", got)
	}
}
