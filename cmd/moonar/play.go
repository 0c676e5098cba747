package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Haniyya/moonar-lander/internal/config"
	"github.com/Haniyya/moonar-lander/internal/core"
	"github.com/Haniyya/moonar-lander/internal/games/lander"
	"github.com/Haniyya/moonar-lander/internal/platform/tui"
	"github.com/Haniyya/moonar-lander/internal/registry"
	"github.com/Haniyya/moonar-lander/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Fly a mission",
	Long: `Start flying the specified variant.

Controls:
  Space      - Thrust
  Left/Right - Turn the craft
  P          - Pause
  R          - Restart (after the flight ends)
  Q/Ctrl+C   - Quit

Preset options:
  easy   - Weaker gravity, stronger thruster, forgiving touchdown
  normal - Stock tuning
  hard   - Heavier gravity, weaker thruster, strict touchdown

Examples:
  moonar play classic
  moonar play deluxe --preset easy
  moonar play deluxe --seed 42
  moonar play classic --config ./my-lander.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'moonar list' to see available variants.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Set tuning path and preset before creation
	lander.SetConfigPath(flagConfig)
	lander.SetPreset(preset)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}

	// Open flight storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open flight database: %v\n", err)
		// Continue without storage - the flight still works
		store = nil
	}

	// Run the flight
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running flight: %v\n", runErr)
		os.Exit(1)
	}
}
