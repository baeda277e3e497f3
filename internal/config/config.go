// Package config provides YAML-based application configuration for
// the Stack Tower companion app.
package config

// AppConfig is the full application configuration.
type AppConfig struct {
	Storage     StorageConfig     `yaml:"storage"`
	Sound       SoundConfig       `yaml:"sound"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Stats       StatsConfig       `yaml:"stats"`
}

// StorageConfig locates the persisted score database and profile.
type StorageConfig struct {
	DBPath      string `yaml:"db_path"`
	ProfilePath string `yaml:"profile_path"`
}

// SoundConfig controls effect playback.
type SoundConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // 0.0 to 1.0
}

// LeaderboardConfig bounds the leaderboard fetch.
type LeaderboardConfig struct {
	Limit int `yaml:"limit"` // top-N rows per filter
}

// StatsConfig bounds the per-mode statistics sample.
type StatsConfig struct {
	SampleSize int `yaml:"sample_size"` // most recent N records per mode
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Storage: StorageConfig{
			DBPath:      "~/.stacktower/scores.db",
			ProfilePath: "~/.stacktower/profile.yaml",
		},
		Sound: SoundConfig{
			Muted:  false,
			Volume: 0.8,
		},
		Leaderboard: LeaderboardConfig{
			Limit: 10,
		},
		Stats: StatsConfig{
			SampleSize: 50,
		},
	}
}

// normalize repairs out-of-range values loaded from disk.
func normalize(cfg AppConfig) AppConfig {
	def := Default()
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = def.Storage.DBPath
	}
	if cfg.Storage.ProfilePath == "" {
		cfg.Storage.ProfilePath = def.Storage.ProfilePath
	}
	if cfg.Sound.Volume < 0 {
		cfg.Sound.Volume = 0
	}
	if cfg.Sound.Volume > 1 {
		cfg.Sound.Volume = 1
	}
	if cfg.Leaderboard.Limit <= 0 {
		cfg.Leaderboard.Limit = def.Leaderboard.Limit
	}
	if cfg.Stats.SampleSize <= 0 {
		cfg.Stats.SampleSize = def.Stats.SampleSize
	}
	return cfg
}
