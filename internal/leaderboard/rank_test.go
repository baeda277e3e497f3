package leaderboard

import (
	"testing"

	"github.com/stacktower/stacktower/internal/game"
)

func TestRankIsDenseAndOrdered(t *testing.T) {
	records := []game.ScoreRecord{
		{Mode: game.ModeClassic, Score: 500},
		{Mode: game.ModeClassic, Score: 400},
		{Mode: game.ModeClassic, Score: 300},
		{Mode: game.ModeClassic, Score: 200},
		{Mode: game.ModeClassic, Score: 100},
	}

	entries := Rank(records)

	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("Entry %d: expected rank %d, got %d", i, i+1, e.Rank)
		}
		if e.Record.Score != records[i].Score {
			t.Errorf("Entry %d: record order changed, got score %d", i, e.Record.Score)
		}
	}
}

func TestRankTiesKeepStoreOrder(t *testing.T) {
	records := []game.ScoreRecord{
		{ID: 1, Score: 300},
		{ID: 2, Score: 300},
		{ID: 3, Score: 300},
	}

	entries := Rank(records)

	for i, e := range entries {
		if e.Record.ID != records[i].ID {
			t.Errorf("Tie order changed at position %d: got record %d", i, e.Record.ID)
		}
		if e.Rank != i+1 {
			t.Errorf("Expected dense rank %d for tied record, got %d", i+1, e.Rank)
		}
	}
}

func TestRankEmpty(t *testing.T) {
	entries := Rank(nil)
	if len(entries) != 0 {
		t.Errorf("Expected no entries for empty input, got %d", len(entries))
	}
}

func TestTierForRank(t *testing.T) {
	cases := []struct {
		rank int
		tier Tier
	}{
		{1, TierGold},
		{2, TierSilver},
		{3, TierBronze},
		{4, TierStandard},
		{10, TierStandard},
	}

	for _, c := range cases {
		if got := TierForRank(c.rank); got != c.tier {
			t.Errorf("Rank %d: expected tier %v, got %v", c.rank, c.tier, got)
		}
	}
}

func TestMedalOnlyForTopThree(t *testing.T) {
	if TierGold.Medal() == "" || TierSilver.Medal() == "" || TierBronze.Medal() == "" {
		t.Error("Medal tiers must have a marker")
	}
	if TierStandard.Medal() != "" {
		t.Errorf("Standard tier should have no marker, got %q", TierStandard.Medal())
	}
}

func TestFilterCycleVisitsAllAndWraps(t *testing.T) {
	f := FilterAll
	seen := map[Filter]bool{}

	steps := len(Filters())
	for i := 0; i < steps; i++ {
		seen[f] = true
		f = f.Next()
	}

	if f != FilterAll {
		t.Errorf("Expected cycle to wrap back to all, got %v", f)
	}
	if len(seen) != steps {
		t.Errorf("Expected %d distinct filters, saw %d", steps, len(seen))
	}
}

func TestFilterPrevInvertsNext(t *testing.T) {
	for _, f := range Filters() {
		if got := f.Next().Prev(); got != f {
			t.Errorf("Next then Prev of %v should round-trip, got %v", f, got)
		}
	}
}
