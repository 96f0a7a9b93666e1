// corrbench - review workbench for LLM output corrections.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/corrbench/internal/cli"
	"github.com/jeranaias/corrbench/internal/config"
	"github.com/jeranaias/corrbench/internal/data"
	"github.com/jeranaias/corrbench/internal/storage"
	"github.com/jeranaias/corrbench/internal/ui/review"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// watchInterval is the minimum time between source reload events.
const watchInterval = 2 * time.Second

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	// Version and help need no configuration
	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		cli.PrintError(err)
		os.Exit(cli.ExitCode(err))
	}

	switch cmd {
	case cli.CmdReview:
		err = runReview(args, cfg)
	case cli.CmdDiff:
		err = cli.HandleDiff(args)
	case cli.CmdExport:
		err = cli.HandleExport(args, cfg)
	case cli.CmdStats:
		err = cli.HandleStats(args, cfg)
	case cli.CmdConfig:
		err = cli.HandleConfig(args, cfg)
	default:
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	}

	if err != nil {
		cli.PrintError(err)
		os.Exit(cli.ExitCode(err))
	}
}

// runReview wires up the loader, store and watcher, then hands control
// to the Bubble Tea program.
func runReview(args cli.Args, cfg *config.Config) error {
	if args.Source == "" {
		return cli.NewUsageError("review", "review needs a source file",
			"corrbench review <file.csv>")
	}
	if err := cli.RequiresTTY("review samples"); err != nil {
		return err
	}

	parser := cli.NewArgParser(args.Raw)
	batchSize := parser.FlagIntOrDefault("batch-size", cfg.Review.BatchSize)

	loader, err := data.NewLoader(args.Source, batchSize)
	if err != nil {
		return err
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	startFrom := 0
	if cfg.Review.ResumeSession && !parser.BoolFlag("fresh") {
		if idx, err := store.LastSession(args.Source); err == nil {
			startFrom = idx
		}
	}

	var watcher *data.Watcher
	if cfg.Review.WatchSource && !args.NoWatch {
		watcher, err = data.WatchFile(args.Source, watchInterval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: source watching disabled: %v\n", err)
		} else {
			defer watcher.Close()
		}
	}

	model, err := review.New(review.Options{
		Config:    cfg,
		Loader:    loader,
		Store:     store,
		Watcher:   watcher,
		StartFrom: startFrom,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("review session failed: %w", err)
	}
	return model.Err()
}
