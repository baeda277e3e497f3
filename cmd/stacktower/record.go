package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/profile"
)

var (
	flagRecordMode       string
	flagRecordScore      int
	flagRecordBlocks     int
	flagRecordDifficulty string
	flagRecordLevel      string
	flagRecordStars      int
)

// coinsPerScore is the coin award divisor: one coin per 100 points.
const coinsPerScore = 100

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a finished game session",
	Long: `Append a finished game to the score database and fold it into
the player profile: high-score watermark, games-played counter, coin
award, and challenge progress.

This is the write path the game itself drives; the command exists for
imports and testing.

Examples:
  stacktower record --mode classic --score 1200 --blocks 34
  stacktower record --mode time_attack --score 800 --blocks 21 --difficulty hard
  stacktower record --mode challenge --score 500 --blocks 18 --level level_3 --stars 2`,
	Run: runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&flagRecordMode, "mode", "", "Game mode: classic, time_attack, challenge")
	recordCmd.Flags().IntVar(&flagRecordScore, "score", 0, "Final score")
	recordCmd.Flags().IntVar(&flagRecordBlocks, "blocks", 0, "Blocks stacked")
	recordCmd.Flags().StringVar(&flagRecordDifficulty, "difficulty", "", "Difficulty: easy, medium, hard (defaults to profile setting)")
	recordCmd.Flags().StringVar(&flagRecordLevel, "level", "", "Challenge level id (challenge mode only)")
	recordCmd.Flags().IntVar(&flagRecordStars, "stars", 0, "Stars earned 0-3 (challenge mode only)")
	recordCmd.MarkFlagRequired("mode")
	recordCmd.MarkFlagRequired("score")
}

func runRecord(_ *cobra.Command, _ []string) {
	mode := game.Mode(flagRecordMode)
	if !mode.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagRecordMode)
		os.Exit(1)
	}
	if flagRecordScore < 0 || flagRecordBlocks < 0 {
		fmt.Fprintln(os.Stderr, "Error: score and blocks must be non-negative")
		os.Exit(1)
	}
	if flagRecordStars < 0 || flagRecordStars > 3 {
		fmt.Fprintln(os.Stderr, "Error: stars must be between 0 and 3")
		os.Exit(1)
	}
	if mode == game.ModeChallenge {
		if flagRecordLevel == "" {
			fmt.Fprintln(os.Stderr, "Error: challenge mode requires --level")
			os.Exit(1)
		}
		if _, ok := game.LevelByID(flagRecordLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown challenge level %q\n", flagRecordLevel)
			os.Exit(1)
		}
	} else if flagRecordLevel != "" {
		fmt.Fprintf(os.Stderr, "Error: --level only applies to challenge mode\n")
		os.Exit(1)
	}

	a, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	snapshot := a.profiles.Current()

	difficulty := snapshot.Difficulty
	if flagRecordDifficulty != "" {
		difficulty = game.Difficulty(flagRecordDifficulty)
		if !difficulty.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagRecordDifficulty)
			os.Exit(1)
		}
	}

	rec := game.ScoreRecord{
		Mode:       mode,
		Score:      flagRecordScore,
		Blocks:     flagRecordBlocks,
		Difficulty: difficulty,
		Level:      flagRecordLevel,
	}

	if _, err := a.scores.SaveScore(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving score: %v\n", err)
		os.Exit(1)
	}

	if err := a.profiles.Update(recordPatch(snapshot, rec, flagRecordStars)); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating profile: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recorded %s game: score %d, %d blocks\n", mode.Title(), rec.Score, rec.Blocks)
	if rec.Score > snapshot.HighScore(mode) {
		fmt.Printf("New %s high score!\n", mode.Title())
	}
}

// recordPatch folds a finished game into the profile: high-score
// watermark, games-played counter, coin award and challenge progress.
func recordPatch(snapshot profile.Profile, rec game.ScoreRecord, stars int) profile.Patch {
	games := snapshot.TotalGamesPlayed + 1
	coins := snapshot.Coins + rec.Score/coinsPerScore

	patch := profile.Patch{
		TotalGamesPlayed: &games,
		Coins:            &coins,
	}

	if rec.Score > snapshot.HighScore(rec.Mode) {
		high := make(map[game.Mode]int, len(snapshot.HighScores))
		for m, s := range snapshot.HighScores {
			high[m] = s
		}
		high[rec.Mode] = rec.Score
		patch.HighScores = high
	}

	if rec.Mode == game.ModeChallenge && rec.Level != "" {
		progress := make(map[string]profile.LevelProgress, len(snapshot.ChallengeProgress)+1)
		for id, lp := range snapshot.ChallengeProgress {
			progress[id] = lp
		}

		lp := progress[rec.Level]
		completed := lp.Completed || stars > 0
		if stars > lp.Stars {
			lp.Stars = stars
		}
		lp.Completed = completed
		progress[rec.Level] = lp
		patch.ChallengeProgress = progress

		// Completing the frontier level advances the unlock watermark.
		if completed {
			if idx := levelIndex(rec.Level); idx+1 == snapshot.CurrentUnlockedLevel {
				next := snapshot.CurrentUnlockedLevel + 1
				patch.CurrentUnlockedLevel = &next
			}
		}
	}

	return patch
}

// levelIndex returns the zero-based position of a level in the
// registry, or -1 when unknown.
func levelIndex(id string) int {
	for i, l := range game.Levels() {
		if l.ID == id {
			return i
		}
	}
	return -1
}
