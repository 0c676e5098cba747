package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Haniyya/moonar-lander/internal/registry"
	"github.com/Haniyya/moonar-lander/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the flight log for a variant",
	Long: `Display the top 10 flights for the specified variant.

Examples:
  moonar scores classic
  moonar scores deluxe`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'moonar list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open flight storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening flight database: %v\n", err)
		os.Exit(1)
	}

	// Get top flights
	flights, err := store.TopFlights(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving flights: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display flights
	fmt.Printf("Flight Log - %s\n", title)
	fmt.Println()

	if len(flights) == 0 {
		fmt.Println("No flights recorded yet.")
		fmt.Println()
		fmt.Printf("Fly 'moonar play %s' to log the first flight!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-9s  %-6s  %s\n", "Rank", "Score", "Outcome", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %-6s  %s\n", "----", "-----", "-------", "----", "----")

	// Print flights
	for i, entry := range flights {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-9s  %-6s  %s\n",
			i+1, entry.Score, entry.Outcome, fmt.Sprintf("%ds", entry.Duration), dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
