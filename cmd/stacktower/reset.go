package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacktower/stacktower/internal/settings"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Destructive reset of all stored data",
	Long: `Delete every stored score and restore the profile to factory
defaults: zero coins, default theme only, no challenge progress, all
high scores cleared, difficulty back to medium.

This cannot be undone. The command asks for confirmation unless --yes
is given.

Examples:
  stacktower reset
  stacktower reset --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagResetYes {
		fmt.Print("This deletes ALL scores and progress. Type 'reset' to confirm: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "reset" {
			fmt.Println("Aborted.")
			return
		}
	}

	a, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := settings.PerformReset(a.scores, a.profiles); err != nil {
		fmt.Fprintf(os.Stderr, "Reset failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("All data has been reset.")
}
