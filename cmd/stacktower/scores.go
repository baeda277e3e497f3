package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Print the leaderboard",
	Long: `Display the top scores, optionally filtered to one mode.

Modes: classic, time_attack, challenge. Without a mode, scores from
all modes are merged.

Examples:
  stacktower scores
  stacktower scores classic
  stacktower scores challenge`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	var mode game.Mode
	if len(args) == 1 {
		mode = game.Mode(args[0])
		if !mode.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Valid modes: classic, time_attack, challenge")
			os.Exit(1)
		}
	}

	a, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	records, err := a.scores.TopScores(mode, a.cfg.Leaderboard.Limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "All Modes"
	if mode != "" {
		title = mode.Title()
	}
	fmt.Printf("Leaderboard - %s\n", title)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	entries := leaderboard.Rank(records)

	fmt.Printf("  %-8s  %-8s  %-7s  %-10s  %-14s  %s\n", "Rank", "Score", "Blocks", "Difficulty", "Mode", "Date")
	fmt.Printf("  %-8s  %-8s  %-7s  %-10s  %-14s  %s\n", "----", "-----", "------", "----------", "----", "----")

	for _, e := range entries {
		rank := fmt.Sprintf("#%d", e.Rank)
		if medal := e.Tier.Medal(); medal != "" {
			rank = fmt.Sprintf("#%d %s", e.Rank, medal)
		}

		detail := e.Record.Mode.Title()
		if e.Record.Mode == game.ModeChallenge && e.Record.Level != "" {
			detail = game.LevelName(e.Record.Level)
		}

		fmt.Printf("  %-8s  %-8d  %-7d  %-10s  %-14s  %s\n",
			rank,
			e.Record.Score,
			e.Record.Blocks,
			e.Record.EffectiveDifficulty().Title(),
			detail,
			e.Record.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if mode != "" {
		if high, err := a.scores.HighScore(mode); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", high)
		}
	}
}
