// Package main is the entry point for the reachable CLI.
//
// reachable can be used either as a library (SDK) or as a standalone
// binary with YAML configuration. This CLI provides the standalone
// binary approach.
//
// Usage:
//
//	reachable watch -c config.yaml    # Watch targets until interrupted
//	reachable check --tcp host:443    # One-shot availability check
//	reachable validate -c config.yaml # Validate configuration
//	reachable version                 # Show version info
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "reachable",
	Short: "Periodic reachability checking for network targets",
	Long: `reachable periodically checks whether network targets answer
ICMP echo requests or accept TCP connections, and reports status
transitions as they happen.

Quick start:
  1. Create a config file (reachable.yaml)
  2. Run: reachable watch -c reachable.yaml

Example config:
  interval: 10s
  policy: on-change
  targets:
    - icmp: example.com
    - tcp: example.com:443
      timeout: 3s`,
	// No Run/RunE means this just shows help when called without subcommands
}

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this reachable binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reachable %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
