package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacktower/stacktower/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive hub",
	Long: `Start the companion app in interactive mode.

The hub links the leaderboard, statistics and settings screens.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Select
  Esc/b        - Back
  Q            - Quit

Examples:
  stacktower menu
  stacktower menu --db ./scores.db
  stacktower menu --mute`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	width, height := terminalSize()

	if err := tui.Run(a.deps(), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Open the settings screen",
	Long: `Open the settings screen directly.

Change the difficulty, pick or unlock themes, test sound effects, or
reset all stored data.

Examples:
  stacktower settings
  stacktower settings --profile ./profile.yaml`,
	Run: runSettings,
}

func runSettings(_ *cobra.Command, _ []string) {
	a, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	width, height := terminalSize()

	if err := tui.RunScreen(a.deps(), tui.ScreenSettings, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
