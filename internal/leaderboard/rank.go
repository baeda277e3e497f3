// Package leaderboard assigns ranks and visual tiers to score records
// already ordered by the store, and defines the mode filter cycle.
package leaderboard

import "github.com/stacktower/stacktower/internal/game"

// Tier is the visual treatment for a rank. The top three ranks get a
// medal tier; everything below shares the standard tier.
type Tier int

const (
	TierStandard Tier = iota
	TierGold
	TierSilver
	TierBronze
)

// Medal returns the marker shown next to a medal-tier entry.
func (t Tier) Medal() string {
	switch t {
	case TierGold:
		return "1st"
	case TierSilver:
		return "2nd"
	case TierBronze:
		return "3rd"
	}
	return ""
}

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank   int // dense, 1-based
	Tier   Tier
	Record game.ScoreRecord
}

// TierForRank maps a 1-based rank to its visual tier.
func TierForRank(rank int) Tier {
	switch rank {
	case 1:
		return TierGold
	case 2:
		return TierSilver
	case 3:
		return TierBronze
	}
	return TierStandard
}

// Rank assigns dense 1-based ranks in list order. The store delivers
// records sorted by score descending; ties keep the store's order.
// Records are not re-sorted here.
func Rank(records []game.ScoreRecord) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		rank := i + 1
		entries[i] = Entry{
			Rank:   rank,
			Tier:   TierForRank(rank),
			Record: r,
		}
	}
	return entries
}
