// Package stats turns sampled score records into per-mode statistics.
// All functions are pure; callers fetch the samples and decide what to
// do on fetch failure (the policy is to keep previously displayed
// numbers rather than surface read errors).
package stats

import (
	"math"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/profile"
)

// Breakdown is a difficulty histogram. All three counters are always
// present, zero when no record matched.
type Breakdown struct {
	Easy   int
	Medium int
	Hard   int
}

// Total returns the number of records counted in the histogram.
func (b Breakdown) Total() int {
	return b.Easy + b.Medium + b.Hard
}

// Count returns the counter for a single difficulty.
func (b Breakdown) Count(d game.Difficulty) int {
	switch d {
	case game.DifficultyEasy:
		return b.Easy
	case game.DifficultyHard:
		return b.Hard
	default:
		return b.Medium
	}
}

// ModeStats holds derived statistics for one game mode.
// Secondary metrics are mode-dependent: BestStreak for classic,
// BestTime for time attack (blocks double as the time proxy), and the
// star fields for challenge.
type ModeStats struct {
	Mode         game.Mode
	GamesPlayed  int
	AverageScore int // floor of the mean score

	BestStreak int // classic: max blocks stacked in one run
	BestTime   int // time attack: max blocks as time proxy

	LevelsCompleted int
	TotalStars      int
	AverageStars    float64 // rounded to one decimal

	Breakdown Breakdown
}

// Overall aggregates across all sampled modes. The histogram covers
// the union of the per-mode samples; when a sample was truncated by
// the store's limit it is an approximation of the lifetime histogram,
// not an exact count.
type Overall struct {
	TotalGamesPlayed int
	Breakdown        Breakdown
}

// DifficultyBreakdown counts records per difficulty, substituting
// medium for records that carry no difficulty value.
func DifficultyBreakdown(records []game.ScoreRecord) Breakdown {
	var b Breakdown
	for _, r := range records {
		switch r.EffectiveDifficulty() {
		case game.DifficultyEasy:
			b.Easy++
		case game.DifficultyHard:
			b.Hard++
		default:
			b.Medium++
		}
	}
	return b
}

// AggregateMode computes statistics for one mode from its sampled
// records. An empty sample yields all-zero stats rather than an error.
func AggregateMode(mode game.Mode, records []game.ScoreRecord) ModeStats {
	st := ModeStats{
		Mode:        mode,
		GamesPlayed: len(records),
		Breakdown:   DifficultyBreakdown(records),
	}

	if len(records) == 0 {
		return st
	}

	sum := 0
	maxBlocks := 0
	for _, r := range records {
		sum += r.Score
		if r.Blocks > maxBlocks {
			maxBlocks = r.Blocks
		}
	}
	st.AverageScore = sum / len(records)

	switch mode {
	case game.ModeClassic:
		st.BestStreak = maxBlocks
	case game.ModeTimeAttack:
		st.BestTime = maxBlocks
	}

	return st
}

// WithChallengeProgress folds challenge-level progress into challenge
// stats. Completion and stars come from the progress map, not from
// score records.
func WithChallengeProgress(st ModeStats, progress map[string]profile.LevelProgress) ModeStats {
	for _, lp := range progress {
		if lp.Completed {
			st.LevelsCompleted++
		}
		st.TotalStars += lp.Stars
	}
	st.AverageStars = averageStars(st.TotalStars, st.LevelsCompleted)
	return st
}

// AggregateOverall combines per-mode samples into the overall view.
func AggregateOverall(samples map[game.Mode][]game.ScoreRecord) Overall {
	var all []game.ScoreRecord
	total := 0
	for _, records := range samples {
		total += len(records)
		all = append(all, records...)
	}
	return Overall{
		TotalGamesPlayed: total,
		Breakdown:        DifficultyBreakdown(all),
	}
}

// averageStars rounds the mean star count to one decimal place.
// Zero completed levels yields 0, not a division error.
func averageStars(totalStars, levelsCompleted int) float64 {
	if levelsCompleted == 0 {
		return 0
	}
	return math.Round(10*float64(totalStars)/float64(levelsCompleted)) / 10
}
