// moonar is a terminal lunar lander for flying descent missions in the terminal.
//
// Usage:
//
//	moonar list              - List available variants
//	moonar play <variant>    - Fly a mission
//	moonar menu              - Start menu to pick variants interactively
//	moonar serve             - Start SSH server for remote play
//	moonar scores <variant>  - Show the flight log for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.moonar/flights.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/Haniyya/moonar-lander/internal/games/lander"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moonar",
	Short: "Moonar - Lunar lander in your terminal",
	Long: `Moonar is a terminal lunar lander. Fight gravity with a thruster,
turn the craft, and touch down gently before the surface wins.

Available commands:
  list     - Show all available variants
  play     - Fly a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View the flight log

Examples:
  moonar list
  moonar play classic
  moonar play deluxe --preset hard
  moonar menu
  moonar serve --ssh :2222
  moonar scores deluxe`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.moonar/flights.db", "Path to flight database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
