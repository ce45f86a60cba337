package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/memorymatch/tui-go/internal/config"
	"github.com/memorymatch/tui-go/internal/game"
	"github.com/memorymatch/tui-go/internal/logging"
	"github.com/memorymatch/tui-go/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctrl := game.NewController(
		game.WithAlphabet(cfg.Symbols),
		game.WithMismatchDelay(cfg.MismatchDelay),
		game.WithRand(game.NewRand(cfg.Seed)),
		game.WithLogger(logger),
	)

	logger.Info().
		Int("deck_size", cfg.DeckSize).
		Int("duration", cfg.Duration).
		Int("symbols", len(cfg.Symbols)).
		Bool("debug", cfg.Debug).
		Msg("starting memory-match")

	p := tea.NewProgram(
		tui.NewRootModel(cfg, ctrl),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
