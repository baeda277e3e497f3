// Package game defines the shared vocabulary of the Stack Tower
// companion app: game modes, difficulty levels and score records.
package game

import "time"

// Mode identifies one of the three Stack Tower game variants.
type Mode string

const (
	ModeClassic    Mode = "classic"
	ModeTimeAttack Mode = "time_attack"
	ModeChallenge  Mode = "challenge"
)

// Modes lists all modes in display order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeTimeAttack, ModeChallenge}
}

// Valid reports whether m is a known game mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeClassic, ModeTimeAttack, ModeChallenge:
		return true
	}
	return false
}

// Title returns a human-readable name for display.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeTimeAttack:
		return "Time Attack"
	case ModeChallenge:
		return "Challenge"
	}
	return string(m)
}

// Difficulty is the global pacing setting. Records written before the
// setting existed carry no difficulty; DifficultyMedium is substituted
// wherever one is required.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Title returns a human-readable name for display.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return string(d)
}

// ScoreRecord is one completed play session. Records are immutable
// once written; the store only ever appends or truncates.
type ScoreRecord struct {
	ID         int64
	Mode       Mode
	Score      int
	Blocks     int        // stacked units; doubles as time proxy in time attack
	Difficulty Difficulty // empty when recorded without a difficulty setting
	Level      string     // challenge level id, empty for other modes
	CreatedAt  time.Time
}

// EffectiveDifficulty returns the record's difficulty, substituting
// medium when none was recorded.
func (r ScoreRecord) EffectiveDifficulty() Difficulty {
	if r.Difficulty.Valid() {
		return r.Difficulty
	}
	return DifficultyMedium
}
