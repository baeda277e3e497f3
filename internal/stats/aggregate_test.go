package stats

import (
	"testing"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/profile"
)

func record(mode game.Mode, score, blocks int, difficulty game.Difficulty) game.ScoreRecord {
	return game.ScoreRecord{Mode: mode, Score: score, Blocks: blocks, Difficulty: difficulty}
}

func TestAverageScoreIsFloorOfMean(t *testing.T) {
	records := []game.ScoreRecord{
		record(game.ModeClassic, 100, 5, game.DifficultyEasy),
		record(game.ModeClassic, 150, 8, game.DifficultyEasy),
		record(game.ModeClassic, 201, 3, game.DifficultyEasy),
	}

	st := AggregateMode(game.ModeClassic, records)

	// floor(451/3) = 150
	if st.AverageScore != 150 {
		t.Errorf("Expected average score 150, got %d", st.AverageScore)
	}
	if st.GamesPlayed != 3 {
		t.Errorf("Expected 3 games played, got %d", st.GamesPlayed)
	}
}

func TestAggregateModeEmptySample(t *testing.T) {
	st := AggregateMode(game.ModeClassic, nil)

	if st.AverageScore != 0 {
		t.Errorf("Expected average score 0 for empty sample, got %d", st.AverageScore)
	}
	if st.GamesPlayed != 0 {
		t.Errorf("Expected 0 games played, got %d", st.GamesPlayed)
	}
	if st.Breakdown.Total() != 0 {
		t.Errorf("Expected empty breakdown, got %+v", st.Breakdown)
	}
}

func TestDifficultyBreakdownDefaultSubstitution(t *testing.T) {
	records := []game.ScoreRecord{
		record(game.ModeClassic, 10, 1, game.DifficultyEasy),
		record(game.ModeClassic, 10, 1, ""), // unset counts as medium
		record(game.ModeClassic, 10, 1, game.DifficultyHard),
	}

	b := DifficultyBreakdown(records)

	if b.Easy != 1 || b.Medium != 1 || b.Hard != 1 {
		t.Errorf("Expected breakdown {easy:1, medium:1, hard:1}, got {easy:%d, medium:%d, hard:%d}",
			b.Easy, b.Medium, b.Hard)
	}
}

func TestDifficultyBreakdownAllKeysPresent(t *testing.T) {
	b := DifficultyBreakdown(nil)

	for _, d := range game.Difficulties() {
		if b.Count(d) != 0 {
			t.Errorf("Expected zero count for %s, got %d", d, b.Count(d))
		}
	}
}

func TestSecondaryMetricsPerMode(t *testing.T) {
	records := []game.ScoreRecord{
		record(game.ModeClassic, 100, 12, game.DifficultyMedium),
		record(game.ModeClassic, 200, 30, game.DifficultyMedium),
		record(game.ModeClassic, 150, 21, game.DifficultyMedium),
	}

	classic := AggregateMode(game.ModeClassic, records)
	if classic.BestStreak != 30 {
		t.Errorf("Expected best streak 30, got %d", classic.BestStreak)
	}
	if classic.BestTime != 0 {
		t.Errorf("Classic stats should not set best time, got %d", classic.BestTime)
	}

	timeAttack := AggregateMode(game.ModeTimeAttack, records)
	if timeAttack.BestTime != 30 {
		t.Errorf("Expected best time 30, got %d", timeAttack.BestTime)
	}
	if timeAttack.BestStreak != 0 {
		t.Errorf("Time attack stats should not set best streak, got %d", timeAttack.BestStreak)
	}
}

func TestChallengeProgressAggregation(t *testing.T) {
	progress := map[string]profile.LevelProgress{
		"level_1": {Completed: true, Stars: 3},
		"level_2": {Completed: true, Stars: 2},
		"level_3": {Completed: true, Stars: 2},
		"level_4": {Completed: false, Stars: 0},
	}

	st := WithChallengeProgress(AggregateMode(game.ModeChallenge, nil), progress)

	if st.LevelsCompleted != 3 {
		t.Errorf("Expected 3 completed levels, got %d", st.LevelsCompleted)
	}
	if st.TotalStars != 7 {
		t.Errorf("Expected 7 total stars, got %d", st.TotalStars)
	}
	// round(10*7/3)/10 = 2.3
	if st.AverageStars != 2.3 {
		t.Errorf("Expected average stars 2.3, got %v", st.AverageStars)
	}
}

func TestChallengeAverageStarsNoCompletedLevels(t *testing.T) {
	progress := map[string]profile.LevelProgress{
		"level_1": {Completed: false, Stars: 0},
	}

	st := WithChallengeProgress(AggregateMode(game.ModeChallenge, nil), progress)

	if st.AverageStars != 0 {
		t.Errorf("Expected average stars 0 with no completed levels, got %v", st.AverageStars)
	}
}

func TestAggregateOverallCombinesSamples(t *testing.T) {
	samples := map[game.Mode][]game.ScoreRecord{
		game.ModeClassic: {
			record(game.ModeClassic, 100, 5, game.DifficultyEasy),
			record(game.ModeClassic, 100, 5, ""),
		},
		game.ModeTimeAttack: {
			record(game.ModeTimeAttack, 50, 9, game.DifficultyHard),
		},
		game.ModeChallenge: nil,
	}

	overall := AggregateOverall(samples)

	if overall.TotalGamesPlayed != 3 {
		t.Errorf("Expected 3 total games, got %d", overall.TotalGamesPlayed)
	}
	if overall.Breakdown.Easy != 1 || overall.Breakdown.Medium != 1 || overall.Breakdown.Hard != 1 {
		t.Errorf("Unexpected overall breakdown: %+v", overall.Breakdown)
	}
}
