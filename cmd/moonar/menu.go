package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Haniyya/moonar-lander/internal/config"
	"github.com/Haniyya/moonar-lander/internal/core"
	"github.com/Haniyya/moonar-lander/internal/games/lander"
	"github.com/Haniyya/moonar-lander/internal/platform/tui"
	"github.com/Haniyya/moonar-lander/internal/registry"
	"github.com/Haniyya/moonar-lander/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Moonar with a variant picker menu",
	Long: `Start Moonar in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a flight ends, you return to the menu to fly again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Flight log
  Q            - Quit

Examples:
  moonar menu
  moonar menu --fps 30
  moonar menu --db ./flights.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open flight storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open flight database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	preset, presetErr := config.ParsePreset(flagPreset)
	if presetErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
		preset, _ = config.ParsePreset("")
	}
	lander.SetConfigPath(flagConfig)
	lander.SetPreset(preset)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the flight log
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the flight log
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
			continue
		}

		// Update seed for each flight
		cfg.Seed = time.Now().UnixNano()

		// Run the flight
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running flight: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
