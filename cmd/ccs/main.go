// Package main is the entry point for the ccs CLI.
//
// ccs manages CloudSigma servers, drives, VLANs, IPs and subscriptions:
// listing and looking them up by name, creating servers with their system
// drive, and the drive lifecycle.
//
// For detailed usage information, run:
//
//	ccs --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/ccs/cmd/ccs/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
