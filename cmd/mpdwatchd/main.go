package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/cover"
	"mpdwatch/internal/domain"
	"mpdwatch/internal/notify"
	"mpdwatch/internal/player"
	"mpdwatch/internal/procguard"
	"mpdwatch/internal/remote"
	"mpdwatch/internal/watcher"
)

// AppOptions assembles the daemon's dependency graph. Exported so tests can
// validate it with fx.ValidateApp.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.New,
		fx.Annotate(player.New, fx.As(new(domain.Player))),
		fx.Annotate(procguard.New, fx.As(new(domain.Guard))),
		fx.Annotate(cover.New, fx.As(new(domain.CoverResolver))),
		notify.New,
		watcher.New,
		remote.New,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		AppOptions,
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// registerHooks starts the two long-lived tasks on a shared cancellable
// context. The initial connect is best-effort: an unreachable player only
// logs a warning, the watcher's reconnect path picks it up from there.
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	link domain.Player,
	w *watcher.Watcher,
	l *remote.Listener,
) {
	var cancel context.CancelFunc

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("mpdwatch daemon started")

			if err := link.Connect(); err != nil {
				logger.Warn("Initial player connection failed, will keep retrying",
					zap.Error(err))
			}

			runCtx, c := context.WithCancel(context.Background())
			cancel = c
			go w.Run(runCtx)
			go l.Run(runCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			if cancel != nil {
				cancel()
			}
			return nil
		},
	})
}
