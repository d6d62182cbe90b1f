package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/muxmark/internal/adapters/oscommand"
	"github.com/AntonioJCosta/muxmark/internal/adapters/pathresolution"
	"github.com/AntonioJCosta/muxmark/internal/adapters/tmux"
	"github.com/AntonioJCosta/muxmark/internal/appconfig"
	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/muxmark/internal/core/services/bookmarkmanagement"
	"github.com/AntonioJCosta/muxmark/internal/core/services/sessiondirection"
	"github.com/AntonioJCosta/muxmark/internal/handlers/cli"
	"github.com/AntonioJCosta/muxmark/internal/repositories/bookmarkfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmdExec := oscommand.NewOSCommandExecutor()

	cfg, err := appconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving data directory: %v\n", err)
		os.Exit(1)
	}

	store, err := bookmarkfile.NewStore(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing bookmark store: %v\n", err)
		os.Exit(1)
	}

	resolver := pathresolution.NewResolver()
	mux := tmux.NewMultiplexer(cmdExec, cfg.TmuxCommand)

	bookmarkSvc := bookmarkmanagement.NewService(store, resolver)
	sessionDirector := sessiondirection.NewService(store, mux, cfg.SessionPrefix)

	rootCmd := cli.NewRootCommand(Version, bookmarkSvc, sessionDirector)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy to distinct exit codes so shell callers
// can tell the failure categories apart.
func exitCode(err error) int {
	switch {
	case errors.Is(err, bookmark.ErrInvalidPath):
		return 2
	case errors.Is(err, bookmark.ErrUnknownAlias):
		return 3
	case errors.Is(err, bookmark.ErrStalePath):
		return 4
	case errors.Is(err, bookmark.ErrMultiplexer):
		return 5
	}
	return 1
}
