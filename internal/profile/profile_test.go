package profile

import (
	"testing"

	"github.com/stacktower/stacktower/internal/game"
)

func TestFactoryDefaults(t *testing.T) {
	p := Factory()

	if p.Coins != 0 {
		t.Errorf("Expected 0 coins, got %d", p.Coins)
	}
	if p.CurrentTheme != DefaultThemeID {
		t.Errorf("Expected default theme, got %q", p.CurrentTheme)
	}
	if len(p.UnlockedThemes) != 1 || p.UnlockedThemes[0] != DefaultThemeID {
		t.Errorf("Expected only the default theme unlocked, got %v", p.UnlockedThemes)
	}
	if len(p.ChallengeProgress) != 0 {
		t.Errorf("Expected empty challenge progress, got %v", p.ChallengeProgress)
	}
	if p.CurrentUnlockedLevel != 1 {
		t.Errorf("Expected unlocked level 1, got %d", p.CurrentUnlockedLevel)
	}
	for _, m := range game.Modes() {
		if p.HighScores[m] != 0 {
			t.Errorf("Expected high score 0 for %s, got %d", m, p.HighScores[m])
		}
	}
	if p.TotalGamesPlayed != 0 {
		t.Errorf("Expected 0 games played, got %d", p.TotalGamesPlayed)
	}
	if p.Difficulty != game.DifficultyMedium {
		t.Errorf("Expected medium difficulty, got %s", p.Difficulty)
	}
}

func TestApplyLeavesUnsetFieldsUntouched(t *testing.T) {
	p := Factory()
	p.Coins = 42
	p.TotalGamesPlayed = 7

	coins := 100
	next := Apply(p, Patch{Coins: &coins})

	if next.Coins != 100 {
		t.Errorf("Expected patched coins 100, got %d", next.Coins)
	}
	if next.TotalGamesPlayed != 7 {
		t.Errorf("Unset field changed: expected 7 games, got %d", next.TotalGamesPlayed)
	}
	if p.Coins != 42 {
		t.Errorf("Apply must not mutate its input, coins became %d", p.Coins)
	}
}

func TestApplyShallowMergeReplacesCollections(t *testing.T) {
	p := Factory()
	p.ChallengeProgress = map[string]LevelProgress{
		"level_1": {Completed: true, Stars: 3},
	}

	next := Apply(p, Patch{
		ChallengeProgress: map[string]LevelProgress{
			"level_2": {Completed: true, Stars: 1},
		},
	})

	if len(next.ChallengeProgress) != 1 {
		t.Fatalf("Patch replaces the map wholesale, got %v", next.ChallengeProgress)
	}
	if next.Progress("level_2").Stars != 1 {
		t.Errorf("Expected level_2 progress, got %v", next.ChallengeProgress)
	}
	if next.Progress("level_1").Completed {
		t.Error("Old map entries must not survive a shallow merge")
	}
}

func TestApplyOutputDoesNotAliasPatch(t *testing.T) {
	patchMap := map[string]LevelProgress{"level_1": {Stars: 2}}
	next := Apply(Factory(), Patch{ChallengeProgress: patchMap})

	patchMap["level_1"] = LevelProgress{Stars: 0}

	if next.Progress("level_1").Stars != 2 {
		t.Error("Reducer output aliases the patch map")
	}
}

func TestApplyRejectsInvalidDifficulty(t *testing.T) {
	bad := game.Difficulty("nightmare")
	next := Apply(Factory(), Patch{Difficulty: &bad})

	if next.Difficulty != game.DifficultyMedium {
		t.Errorf("Invalid difficulty must be ignored, got %s", next.Difficulty)
	}
}

func TestProgressAbsentLevelIsZero(t *testing.T) {
	p := Factory()
	lp := p.Progress("level_99")

	if lp.Completed || lp.Stars != 0 {
		t.Errorf("Absent level should be zero progress, got %+v", lp)
	}
}

func TestNormalizeRepairsLoadedState(t *testing.T) {
	broken := Profile{
		CurrentTheme:         "ghost",
		UnlockedThemes:       []string{"neon"},
		CurrentUnlockedLevel: 0,
		Difficulty:           "nightmare",
	}

	fixed := normalize(broken)

	if !fixed.ThemeUnlocked(DefaultThemeID) {
		t.Error("Default theme must always be unlocked")
	}
	if fixed.CurrentTheme != DefaultThemeID {
		t.Errorf("Unknown current theme must fall back to default, got %q", fixed.CurrentTheme)
	}
	if fixed.CurrentUnlockedLevel != 1 {
		t.Errorf("Expected unlocked level repaired to 1, got %d", fixed.CurrentUnlockedLevel)
	}
	if fixed.Difficulty != game.DifficultyMedium {
		t.Errorf("Invalid difficulty must fall back to medium, got %s", fixed.Difficulty)
	}
	for _, m := range game.Modes() {
		if _, ok := fixed.HighScores[m]; !ok {
			t.Errorf("Missing high-score entry for %s", m)
		}
	}
}
