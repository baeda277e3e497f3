// Package tui provides the Bubble Tea screens of the Stack Tower
// companion app: hub menu, leaderboard, statistics and settings, plus
// SSH serving via Wish.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/stacktower/stacktower/internal/profile"
	"github.com/stacktower/stacktower/internal/sound"
	"github.com/stacktower/stacktower/internal/storage"
	"github.com/stacktower/stacktower/internal/themes"
)

// Deps bundles the collaborators every screen needs. Screens read
// scores and the profile through these handles and emit sound intents
// through the trigger; read-path failures are logged here and degrade
// to stale data.
type Deps struct {
	Scores  *storage.Store
	Profile *profile.Store
	Sound   sound.Trigger
	Logger  *log.Logger

	// EffectVolume is sent with every emitted effect, 0.0 to 1.0.
	EffectVolume float64

	// LeaderboardLimit bounds the top-N fetch per filter.
	LeaderboardLimit int

	// StatsSampleSize bounds the per-mode sample for statistics.
	StatsSampleSize int
}

// normalized fills zero-value collaborators with inert defaults so
// screens never nil-check.
func (d Deps) normalized() Deps {
	if d.Sound == nil {
		d.Sound = sound.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.EffectVolume <= 0 {
		d.EffectVolume = 0.8
	}
	if d.LeaderboardLimit <= 0 {
		d.LeaderboardLimit = 10
	}
	if d.StatsSampleSize <= 0 {
		d.StatsSampleSize = 50
	}
	return d
}

// play emits a fire-and-forget sound intent. It never blocks a state
// transition.
func (d Deps) play(effect string) {
	d.Sound.Play(effect, d.EffectVolume)
}

// theme resolves the player's current theme, falling back to the
// default palette when the profile references an unknown theme.
func (d Deps) theme() themes.Theme {
	if d.Profile == nil {
		return themes.Resolve(themes.DefaultID)
	}
	return themes.Resolve(d.Profile.Current().CurrentTheme)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
