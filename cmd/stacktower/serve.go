package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stacktower/stacktower/internal/config"
	"github.com/stacktower/stacktower/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the hub over SSH",
	Long: `Start an SSH server that lets users browse the shared
leaderboard and statistics remotely.

Each SSH connection gets its own session on the hub. All users share
the same score database and profile.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.stacktower/host_key

Examples:
  stacktower serve                           # Listen on :23234
  stacktower serve --ssh :2222               # Listen on port 2222
  stacktower serve --host-key ./my_host_key  # Use specific host key
  stacktower serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		appCfg.Storage.DBPath = flagDBPath
	}
	if flagProfile != "" {
		appCfg.Storage.ProfilePath = flagProfile
	}

	cfg := tui.SSHServerConfig{
		Address:          flagSSHAddr,
		HostKeyPath:      flagHostKey,
		DBPath:           appCfg.Storage.DBPath,
		ProfilePath:      appCfg.Storage.ProfilePath,
		LeaderboardLimit: appCfg.Leaderboard.Limit,
		StatsSampleSize:  appCfg.Stats.SampleSize,
		IdleTimeout:      time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Stack Tower SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
