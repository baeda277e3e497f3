// stacktower is the terminal companion app for the Stack Tower arcade
// game: leaderboards, statistics and settings over the shared score
// database and player profile.
//
// Usage:
//
//	stacktower menu             - Interactive hub (leaderboard, stats, settings)
//	stacktower scores [mode]    - Print the leaderboard
//	stacktower stats            - Print per-mode statistics
//	stacktower settings         - Open the settings screen
//	stacktower record           - Record a finished game
//	stacktower reset            - Wipe all scores and progress
//	stacktower serve            - Serve the hub over SSH
//
// Global flags:
//
//	--config <path>   - Path to config YAML
//	--db <path>       - Override scores database path
//	--profile <path>  - Override profile path
//	--volume <v>      - Sound effect volume (0.0 to 1.0)
//	--mute            - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagProfile string
	flagVolume  float64
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stacktower",
	Short: "Stack Tower - Leaderboards and settings in your terminal",
	Long: `Stack Tower companion is a terminal app for browsing your Stack
Tower leaderboards and statistics, and for managing game settings.

Available commands:
  menu      - Interactive hub with all screens
  scores    - Print the leaderboard
  stats     - Print per-mode statistics
  settings  - Open the settings screen directly
  record    - Record a finished game session
  reset     - Destructive reset of all stored data
  serve     - Serve the hub over SSH for a shared leaderboard

Examples:
  stacktower menu
  stacktower scores classic
  stacktower record --mode classic --score 1200 --blocks 34
  stacktower serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Path to profile file (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", -1, "Sound effect volume 0.0-1.0 (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}
