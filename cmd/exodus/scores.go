package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/exodus/internal/platform/tui"
	"github.com/arcadelab/exodus/internal/profile"
)

var (
	flagBoard bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [username]",
	Short: "Show the leaderboard",
	Long: `Display the top player profiles by high score.

With a username argument, also shows that player's recent matches.
With --board the leaderboard opens as an interactive, scrollable table.

Examples:
  exodus scores
  exodus scores ripley
  exodus scores --board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the leaderboard as an interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "How many profiles to show")
}

func runScores(cmd *cobra.Command, args []string) {
	repo, err := profile.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, boardErr := tui.RunScoreboard(repo, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	profiles, err := repo.TopProfiles(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Exodus - High Scores")
	fmt.Println()

	if len(profiles) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'exodus play --user <name>' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %-10s  %s\n", "Rank", "Player", "Best", "Last", "Updated")
	fmt.Printf("  %-4s  %-20s  %-10s  %-10s  %s\n", "----", "------", "----", "----", "-------")
	for i, p := range profiles {
		fmt.Printf("  %-4d  %-20s  %-10d  %-10d  %s\n",
			i+1, p.Username, p.HighScore, p.LastScore, p.UpdatedAt.Format("2006-01-02 15:04"))
	}

	if len(args) == 0 {
		return
	}

	username := args[0]
	matches, err := repo.RecentMatches(username, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches for %q: %v\n", username, err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Recent matches - %s\n", username)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-10s  %s\n", "Tier", "Score", "Date")
	fmt.Printf("  %-10s  %-10s  %s\n", "----", "-----", "----")
	for _, m := range matches {
		fmt.Printf("  %-10s  %-10d  %s\n", m.Tier, m.Score, m.CreatedAt.Format("2006-01-02 15:04"))
	}
}
