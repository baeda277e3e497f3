package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/stacktower/stacktower/internal/config"
	"github.com/stacktower/stacktower/internal/platform/tui"
	"github.com/stacktower/stacktower/internal/profile"
	"github.com/stacktower/stacktower/internal/sound"
	"github.com/stacktower/stacktower/internal/storage"
)

// app bundles everything a subcommand needs.
type app struct {
	cfg      config.AppConfig
	scores   *storage.Store
	profiles *profile.Store
	trigger  sound.Trigger
}

// openApp loads configuration, applies flag overrides and opens the
// stores. The returned cleanup closes the score database.
func openApp() (*app, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	// Flags override config
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagProfile != "" {
		cfg.Storage.ProfilePath = flagProfile
	}
	if flagVolume >= 0 {
		cfg.Sound.Volume = flagVolume
	}
	if flagMute {
		cfg.Sound.Muted = true
	}

	scores, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open scores database: %w", err)
	}

	profiles, err := profile.Open(cfg.Storage.ProfilePath)
	if err != nil {
		scores.Close()
		return nil, nil, fmt.Errorf("cannot open profile: %w", err)
	}

	var trigger sound.Trigger = sound.Nop{}
	if !cfg.Sound.Muted {
		if player, perr := sound.NewPlayer(cfg.Sound.Volume); perr == nil {
			trigger = player
		}
		// A missing audio device is not fatal; the app stays silent.
	}

	a := &app{
		cfg:      cfg,
		scores:   scores,
		profiles: profiles,
		trigger:  trigger,
	}
	return a, func() { scores.Close() }, nil
}

// deps builds the screen dependencies for this app.
func (a *app) deps() tui.Deps {
	return tui.Deps{
		Scores:           a.scores,
		Profile:          a.profiles,
		Sound:            a.trigger,
		EffectVolume:     a.cfg.Sound.Volume,
		LeaderboardLimit: a.cfg.Leaderboard.Limit,
		StatsSampleSize:  a.cfg.Stats.SampleSize,
	}
}

// terminalSize returns the current terminal dimensions with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
