// ABOUTME: Main entry point for the NavPilot CLI
// ABOUTME: Injects build metadata and dispatches to cobra commands
package main

import (
	"os"

	"github.com/Z0909/heiha/cmd/navpilot/commands"
)

// Build information set by goreleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
