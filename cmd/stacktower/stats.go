package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-mode statistics",
	Long: `Compute and print statistics over the most recent games of
each mode: games played, average score, best runs, challenge stars and
the difficulty breakdown.

Examples:
  stacktower stats
  stacktower stats --db ./scores.db`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	a, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	samples := make(map[game.Mode][]game.ScoreRecord, len(game.Modes()))
	for _, mode := range game.Modes() {
		records, err := a.scores.RecentScores(mode, a.cfg.Stats.SampleSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		samples[mode] = records
	}

	snapshot := a.profiles.Current()

	for _, mode := range game.Modes() {
		st := stats.AggregateMode(mode, samples[mode])
		if mode == game.ModeChallenge {
			st = stats.WithChallengeProgress(st, snapshot.ChallengeProgress)
		}

		fmt.Printf("%s\n", mode.Title())
		fmt.Printf("  Games played   %d\n", st.GamesPlayed)
		fmt.Printf("  Average score  %d\n", st.AverageScore)
		switch mode {
		case game.ModeClassic:
			fmt.Printf("  Best streak    %d blocks\n", st.BestStreak)
		case game.ModeTimeAttack:
			fmt.Printf("  Best run       %d blocks\n", st.BestTime)
		case game.ModeChallenge:
			fmt.Printf("  Completed      %d/%d levels\n", st.LevelsCompleted, len(game.Levels()))
			fmt.Printf("  Stars          %d (avg %.1f)\n", st.TotalStars, st.AverageStars)
		}
		fmt.Printf("  Difficulty     easy %d / medium %d / hard %d\n",
			st.Breakdown.Easy, st.Breakdown.Medium, st.Breakdown.Hard)
		fmt.Println()
	}

	overall := stats.AggregateOverall(samples)
	fmt.Printf("Overall (sampled)\n")
	fmt.Printf("  Games          %d\n", overall.TotalGamesPlayed)
	fmt.Printf("  Difficulty     easy %d / medium %d / hard %d\n",
		overall.Breakdown.Easy, overall.Breakdown.Medium, overall.Breakdown.Hard)
	fmt.Printf("  Lifetime games %d\n", snapshot.TotalGamesPlayed)
}
