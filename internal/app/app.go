package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/diegok/pong3/internal/audio"
	"github.com/diegok/pong3/internal/config"
	"github.com/diegok/pong3/internal/game"
	"github.com/diegok/pong3/internal/ui"
)

// WindowTitle is shown in the terminal title bar
const WindowTitle = "Pong Version 3"

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	screen *ui.Screen
	sound  bool
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	return &App{
		cfg: cfg,
		log: log,
	}
}

// Run is the main entry point for the application.
// It initializes audio and the screen, then plays one match until the
// window is closed.
func (a *App) Run() error {
	a.log.Info("starting",
		zap.Bool("sound", a.cfg.Sound),
		zap.Stringer("log_level", a.cfg.LogLevel))

	// Game works without sound
	if a.cfg.Sound {
		if err := audio.Init(); err != nil {
			a.log.Warn("audio unavailable", zap.Error(err))
		} else {
			a.sound = true
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.screen.SetTitle(WindowTitle)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	canvas := ui.NewTerminalCanvas(screen, game.ArenaWidth, game.ArenaHeight)
	theme := ui.Theme{Background: a.cfg.Background, Foreground: a.cfg.Foreground}

	loop := NewLoop(
		game.NewMatchWithColor(canvas, a.cfg.Foreground),
		ui.NewKeyboard(screen.Events()),
		ui.NewRenderer(canvas, theme),
		NewPacer(game.TickRate),
		a.log,
	)
	loop.EnableSound(a.sound)

	runErr := loop.Run(ctx)

	a.cleanup()
	a.log.Info("stopped", zap.Int("frames", loop.Frames()), zap.Error(runErr))

	return runErr
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.sound {
		audio.Close()
		a.sound = false
	}

	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}
}
