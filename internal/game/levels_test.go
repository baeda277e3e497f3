package game

import "testing"

func TestBuiltinLevelsRegistered(t *testing.T) {
	levels := Levels()
	if len(levels) != 12 {
		t.Fatalf("Expected 12 builtin levels, got %d", len(levels))
	}
	if levels[0].ID != "level_1" || levels[0].Name != "First Steps" {
		t.Errorf("Unexpected first level: %+v", levels[0])
	}
	if levels[11].ID != "level_12" {
		t.Errorf("Expected level_12 last, got %q", levels[11].ID)
	}
}

func TestLevelsAreOrderedByTarget(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i].TargetBlocks < levels[i-1].TargetBlocks {
			t.Errorf("Level %q target %d is below previous %d",
				levels[i].ID, levels[i].TargetBlocks, levels[i-1].TargetBlocks)
		}
	}
}

func TestLevelByID(t *testing.T) {
	l, ok := LevelByID("level_5")
	if !ok {
		t.Fatal("Expected level_5 to exist")
	}
	if l.Name != "Night Shift" {
		t.Errorf("Expected %q, got %q", "Night Shift", l.Name)
	}

	if _, ok := LevelByID("level_99"); ok {
		t.Error("Expected unknown level to be missing")
	}
}

func TestLevelNameFallsBackToID(t *testing.T) {
	if got := LevelName("level_1"); got != "First Steps" {
		t.Errorf("Expected %q, got %q", "First Steps", got)
	}
	if got := LevelName("level_99"); got != "level_99" {
		t.Errorf("Expected raw id fallback, got %q", got)
	}
}

func TestRegisterLevelDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	RegisterLevel(ChallengeLevel{ID: "level_1", Name: "Duplicate"})
}
