package main

import (
	"fmt"
	"os"

	"github.com/diegok/pong3/internal/app"
	"github.com/diegok/pong3/internal/config"
	"github.com/diegok/pong3/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	log := logging.New(cfg.LogFile, cfg.LogLevel)

	application := app.NewApp(cfg, log)
	err = application.Run()
	logging.Sync(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Q / A      Player 1 up / down")
	fmt.Fprintln(os.Stderr, "  P / L      Player 2 up / down")
	fmt.Fprintln(os.Stderr, "  Esc        Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment (also read from .env):")
	fmt.Fprintln(os.Stderr, "  PONG_LOG_FILE      Log file path (default: pong.log)")
	fmt.Fprintln(os.Stderr, "  PONG_LOG_LEVEL     debug, info, warn, error (default: info)")
	fmt.Fprintln(os.Stderr, "  PONG_SOUND         true or false (default: true)")
	fmt.Fprintln(os.Stderr, "  PONG_FOREGROUND    Piece color as #rrggbb (default: #ffffff)")
	fmt.Fprintln(os.Stderr, "  PONG_BACKGROUND    Arena color as #rrggbb (default: #000000)")
}
