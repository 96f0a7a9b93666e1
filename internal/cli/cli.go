// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for corrbench.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdReview Command = iota
	CmdDiff
	CmdExport
	CmdStats
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool // Output in JSON format
	NoWatch bool // Disable source file watching in review mode

	// Command-specific
	Source     string // CSV source file for review/export/stats
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `corrbench - review workbench for LLM output corrections

Corrbench loads annotation CSVs, diffs annotator corrections against
the original model output, and exports confirmed samples as training
data.

Usage:
  corrbench <file.csv>             Start the review TUI on a source file
  corrbench review <file.csv>      Same, explicit form
  corrbench diff <a.txt> <b.txt>   Print the tagged diff of two files
  corrbench export <file.csv>      Export corrected samples
  corrbench stats <file.csv>       Show review progress
  corrbench config [show|set|init] Configuration
  corrbench version                Show version
  corrbench help                   Show this help

Review:
  corrbench review data.csv
    --batch-size N                 Samples per loaded batch (default: 50)
    --no-watch                     Do not reload when the CSV changes
    --fresh                        Ignore any saved session position

Diff:
  corrbench diff original.txt corrected.txt
    --render                       Colorize instead of printing raw tags
    --stats                        Append deletion/insertion counts
    --json                         Emit tagged text and stats as JSON

  Reads both files, tokenizes, and prints the corrected text with
  <false>...</false> around removed runs and <true>...</true> around
  inserted runs. Exits 1 when the input exceeds the size limit.

Export:
  corrbench export data.csv
    --format FORMAT                messages|alpaca|sharegpt|query-response|html
    --output DIR                   Output directory (default: config or cwd)
    --lines                        JSONL, one record per line
    --json                         Print the result summary as JSON

  Only samples confirmed during review are exported. Progress comes
  from the local database, so export works without reopening the TUI.

Stats:
  corrbench stats data.csv
    --json                         Machine-readable counts

Config:
  corrbench config show            Print the active configuration
  corrbench config path            Print the config file location
  corrbench config init            Write a default config file
  corrbench config set KEY VALUE   Set a value (e.g. review.batch_size 25)

Global flags:
  --json                           JSON output where supported
  --no-color                       Disable colored output
  -q, --quiet                      Suppress non-error output

Environment:
  CORRBENCH_CONFIG                 Config file override
  CORRBENCH_BATCH_SIZE             Batch size override
  CORRBENCH_EXPORT_FORMAT          Export format override
  CORRBENCH_OUTPUT_DIR             Export directory override
  CORRBENCH_THEME                  UI theme (light|dark)
  CORRBENCH_DB                     Progress database path
  NO_COLOR                         Disable colored output

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("corrbench version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	// Bare invocation opens the TUI on nothing; review handles the
	// missing source with a usage error.
	if len(remaining) == 0 {
		return CmdReview, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	rest := remaining[1:]
	parsedArgs.Raw = rest

	switch cmd {
	case "review", "tui":
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			parsedArgs.Source = rest[0]
		}
		return CmdReview, parsedArgs

	case "diff":
		return CmdDiff, parsedArgs

	case "export":
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			parsedArgs.Source = rest[0]
		}
		return CmdExport, parsedArgs

	case "stats", "progress":
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			parsedArgs.Source = rest[0]
		}
		return CmdStats, parsedArgs

	case "config":
		if len(rest) > 0 {
			parsedArgs.Subcommand = rest[0]
		}
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Not a command name. A CSV path as the first argument opens
		// the review TUI directly, matching the expected daily flow.
		parsedArgs.Source = remaining[0]
		parsedArgs.Raw = remaining[1:]
		return CmdReview, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-watch":
			parsedArgs.NoWatch = true
		case "--no-color":
			DisableColors()
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}
