package procguard

import (
	"errors"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"mpdwatch/internal/domain"
)

// execCommand is swapped out in tests
var execCommand = exec.Command

// Guard starts and stops named helper processes. State lives in the OS
// process table only: presence is queried by executable name, termination is
// signal-based and best-effort, and started processes are never waited on
// beyond reaping.
type Guard struct {
	logger *zap.Logger
}

// New creates a process guard
func New(logger *zap.Logger) *Guard {
	return &Guard{logger: logger}
}

// IsRunning reports whether a process with the exact executable name exists.
// Lookup failures report false: assuming "not running" lets the caller retry
// a start instead of crashing.
func (g *Guard) IsRunning(name string) bool {
	err := execCommand("pgrep", "-x", name).Run()
	return err == nil
}

// Stop terminates the named process. Already-absent processes are not an
// error.
func (g *Guard) Stop(name string) {
	if err := execCommand("pkill", "-x", name).Run(); err != nil {
		g.logger.Debug("pkill reported nothing to stop",
			zap.String("name", name), zap.Error(err))
		return
	}
	g.logger.Info("Stopped helper", zap.String("name", name))
}

// Start launches argv detached. The process is reaped in the background but
// never waited on by the caller; its exit code is not inspected.
func (g *Guard) Start(name string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("start %s: empty command", name)
	}

	cmd := execCommand(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrHelperMissing, argv[0])
		}
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()

	g.logger.Info("Started helper",
		zap.String("name", name),
		zap.Strings("argv", argv))
	return nil
}
