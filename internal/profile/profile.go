// Package profile holds the player's cross-session state: coins,
// themes, challenge progress, high scores and the difficulty setting.
// The state is an explicit container mutated only through the Apply
// reducer, then persisted as YAML.
package profile

import (
	"github.com/stacktower/stacktower/internal/game"
)

// DefaultThemeID is always unlocked and is the fallback for any
// unknown theme reference.
const DefaultThemeID = "default"

// LevelProgress tracks one challenge level. A level absent from the
// progress map is equivalent to the zero value.
type LevelProgress struct {
	Completed bool `yaml:"completed"`
	Stars     int  `yaml:"stars"` // 0..3
}

// Profile is the full cross-session player state.
type Profile struct {
	Coins                int                       `yaml:"coins"`
	CurrentTheme         string                    `yaml:"current_theme"`
	UnlockedThemes       []string                  `yaml:"unlocked_themes"`
	ChallengeProgress    map[string]LevelProgress  `yaml:"challenge_progress"`
	CurrentUnlockedLevel int                       `yaml:"current_unlocked_level"`
	HighScores           map[game.Mode]int         `yaml:"high_scores"`
	TotalGamesPlayed     int                       `yaml:"total_games_played"`
	Difficulty           game.Difficulty           `yaml:"difficulty"`
}

// Factory returns the canonical fresh-install state.
func Factory() Profile {
	return Profile{
		Coins:                0,
		CurrentTheme:         DefaultThemeID,
		UnlockedThemes:       []string{DefaultThemeID},
		ChallengeProgress:    map[string]LevelProgress{},
		CurrentUnlockedLevel: 1,
		HighScores: map[game.Mode]int{
			game.ModeClassic:    0,
			game.ModeTimeAttack: 0,
			game.ModeChallenge:  0,
		},
		TotalGamesPlayed: 0,
		Difficulty:       game.DifficultyMedium,
	}
}

// Patch is a partial profile update. Nil fields are left untouched;
// set fields replace the corresponding state wholesale (shallow merge).
type Patch struct {
	Coins                *int
	CurrentTheme         *string
	UnlockedThemes       []string
	ChallengeProgress    map[string]LevelProgress
	CurrentUnlockedLevel *int
	HighScores           map[game.Mode]int
	TotalGamesPlayed     *int
	Difficulty           *game.Difficulty
}

// Apply merges a patch into a profile and returns the new state.
// The input profile is not modified.
func Apply(p Profile, patch Patch) Profile {
	next := clone(p)

	if patch.Coins != nil {
		next.Coins = *patch.Coins
	}
	if patch.CurrentTheme != nil {
		next.CurrentTheme = *patch.CurrentTheme
	}
	if patch.UnlockedThemes != nil {
		next.UnlockedThemes = append([]string(nil), patch.UnlockedThemes...)
	}
	if patch.ChallengeProgress != nil {
		next.ChallengeProgress = make(map[string]LevelProgress, len(patch.ChallengeProgress))
		for id, lp := range patch.ChallengeProgress {
			next.ChallengeProgress[id] = lp
		}
	}
	if patch.CurrentUnlockedLevel != nil {
		next.CurrentUnlockedLevel = *patch.CurrentUnlockedLevel
	}
	if patch.HighScores != nil {
		next.HighScores = make(map[game.Mode]int, len(patch.HighScores))
		for m, s := range patch.HighScores {
			next.HighScores[m] = s
		}
	}
	if patch.TotalGamesPlayed != nil {
		next.TotalGamesPlayed = *patch.TotalGamesPlayed
	}
	if patch.Difficulty != nil && patch.Difficulty.Valid() {
		next.Difficulty = *patch.Difficulty
	}

	return next
}

// clone deep-copies a profile so reducer outputs never alias inputs.
func clone(p Profile) Profile {
	next := p
	next.UnlockedThemes = append([]string(nil), p.UnlockedThemes...)
	next.ChallengeProgress = make(map[string]LevelProgress, len(p.ChallengeProgress))
	for id, lp := range p.ChallengeProgress {
		next.ChallengeProgress[id] = lp
	}
	next.HighScores = make(map[game.Mode]int, len(p.HighScores))
	for m, s := range p.HighScores {
		next.HighScores[m] = s
	}
	return next
}

// HighScore returns the recorded best for a mode (0 when absent).
func (p Profile) HighScore(mode game.Mode) int {
	return p.HighScores[mode]
}

// Progress returns challenge progress for a level id, zero-valued when
// the level was never attempted.
func (p Profile) Progress(levelID string) LevelProgress {
	return p.ChallengeProgress[levelID]
}

// ThemeUnlocked reports whether the given theme id has been unlocked.
func (p Profile) ThemeUnlocked(id string) bool {
	for _, t := range p.UnlockedThemes {
		if t == id {
			return true
		}
	}
	return false
}

// normalize repairs state loaded from disk: the default theme is
// always unlocked, the current theme must resolve to an unlocked one,
// and every mode has a high-score entry.
func normalize(p Profile) Profile {
	next := clone(p)

	if next.ChallengeProgress == nil {
		next.ChallengeProgress = map[string]LevelProgress{}
	}
	if next.HighScores == nil {
		next.HighScores = map[game.Mode]int{}
	}
	for _, m := range game.Modes() {
		if _, ok := next.HighScores[m]; !ok {
			next.HighScores[m] = 0
		}
	}
	if !next.ThemeUnlocked(DefaultThemeID) {
		next.UnlockedThemes = append(next.UnlockedThemes, DefaultThemeID)
	}
	if next.CurrentTheme == "" || !next.ThemeUnlocked(next.CurrentTheme) {
		next.CurrentTheme = DefaultThemeID
	}
	if next.CurrentUnlockedLevel < 1 {
		next.CurrentUnlockedLevel = 1
	}
	if !next.Difficulty.Valid() {
		next.Difficulty = game.DifficultyMedium
	}
	return next
}
