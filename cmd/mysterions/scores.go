package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cobrien706/mysterions/internal/platform/tui"
	"github.com/cobrien706/mysterions/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View high scores and session history",
	Long: `Show the top scores and overall stats.

With --interactive, opens a full-screen scoreboard where Tab switches
between the high score table and the recent session history.

Examples:
  mysterions scores
  mysterions scores --limit 25
  mysterions scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the full-screen scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if boardErr := tui.RunScoreboard(store, "mysterions", width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores("mysterions", flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet. Play a game first!")
		return
	}

	fmt.Println("High scores:")
	fmt.Println("------------")
	for i, entry := range scores {
		fmt.Printf("%2d. %6d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats("mysterions")
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d  Best: %d  Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
