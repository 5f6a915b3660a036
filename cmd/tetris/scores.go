package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresUI    bool
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  tetris scores
  tetris scores --ui      # Interactive scoreboard
  tetris scores --stats   # Aggregate play statistics
  tetris scores --clear   # Delete all recorded scores`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresUI, "ui", false, "Show the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate play statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if clearErr := store.ClearScores(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	if flagScoresStats {
		printStats(store)
		return
	}

	if flagScoresUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if uiErr := tui.RunScoreboard(store, width, height); uiErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", uiErr)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "----", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  %-7d  %s\n", i+1, entry.Score, entry.Lines, entry.Level, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Play Statistics - Tetris")
	fmt.Println()
	fmt.Printf("  Rounds played: %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total lines:   %d\n", stats.TotalLines)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
