// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"testing"
)

// =============================================================================
// COMMAND ROUTING TESTS
// =============================================================================

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{"bare", []string{}, CmdReview},
		{"review", []string{"review", "data.csv"}, CmdReview},
		{"csv shortcut", []string{"data.csv"}, CmdReview},
		{"diff", []string{"diff", "a.txt", "b.txt"}, CmdDiff},
		{"export", []string{"export", "data.csv"}, CmdExport},
		{"stats", []string{"stats", "data.csv"}, CmdStats},
		{"progress alias", []string{"progress", "data.csv"}, CmdStats},
		{"config", []string{"config", "show"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"-h"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := parseArgs(tt.args)
			if cmd != tt.want {
				t.Errorf("parseArgs(%v) = %v, want %v", tt.args, cmd, tt.want)
			}
		})
	}
}

func TestParseArgs_SourceCapture(t *testing.T) {
	cmd, args := parseArgs([]string{"review", "data.csv", "--no-watch"})
	if cmd != CmdReview {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Source != "data.csv" {
		t.Errorf("Source = %q, want data.csv", args.Source)
	}
	if !args.NoWatch {
		t.Error("NoWatch not set")
	}

	// Direct-path form captures the source too
	_, args = parseArgs([]string{"annotations.csv"})
	if args.Source != "annotations.csv" {
		t.Errorf("Source = %q, want annotations.csv", args.Source)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	cmd, args := parseArgs([]string{"--json", "stats", "data.csv"})
	if cmd != CmdStats {
		t.Fatalf("cmd = %v", cmd)
	}
	if !args.JSON {
		t.Error("JSON flag not parsed")
	}
	if args.Source != "data.csv" {
		t.Errorf("Source = %q", args.Source)
	}

	// Flag position should not matter
	cmd, args = parseArgs([]string{"stats", "data.csv", "--json"})
	if cmd != CmdStats || !args.JSON {
		t.Error("trailing --json not parsed")
	}
}

// =============================================================================
// ARG PARSER TESTS
// =============================================================================

func TestArgParser_Flags(t *testing.T) {
	p := NewArgParser([]string{"data.csv", "--format", "alpaca", "--output=out", "--lines"})

	if p.Positional(0) != "data.csv" {
		t.Errorf("Positional(0) = %q", p.Positional(0))
	}
	if p.Flag("format") != "alpaca" {
		t.Errorf("Flag(format) = %q", p.Flag("format"))
	}
	if p.Flag("output") != "out" {
		t.Errorf("Flag(output) = %q", p.Flag("output"))
	}
	if !p.BoolFlag("lines") {
		t.Error("BoolFlag(lines) = false")
	}
	if p.BoolFlag("missing") {
		t.Error("BoolFlag(missing) = true")
	}
}

func TestArgParser_ExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--render=false", "--stats=true"})
	if p.BoolFlag("render") {
		t.Error("render should be false")
	}
	if !p.BoolFlag("stats") {
		t.Error("stats should be true")
	}
}

func TestArgParser_FlagIntOrDefault(t *testing.T) {
	p := NewArgParser([]string{"--batch-size", "25"})
	if got := p.FlagIntOrDefault("batch-size", 50); got != 25 {
		t.Errorf("FlagIntOrDefault = %d, want 25", got)
	}
	if got := p.FlagIntOrDefault("missing", 50); got != 50 {
		t.Errorf("FlagIntOrDefault default = %d, want 50", got)
	}
}

func TestArgParser_Subcommand(t *testing.T) {
	p := NewArgParser([]string{"set", "review.batch_size", "25"})
	if p.Subcommand() != "set" {
		t.Errorf("Subcommand = %q", p.Subcommand())
	}
	if p.Positional(1) != "review.batch_size" {
		t.Errorf("Positional(1) = %q", p.Positional(1))
	}
	if p.Positional(2) != "25" {
		t.Errorf("Positional(2) = %q", p.Positional(2))
	}
	if p.Positional(9) != "" {
		t.Error("out of range positional should be empty")
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "yes", "Y", "1", "on"} {
		got, err := ParseBoolString(s)
		if err != nil || !got {
			t.Errorf("ParseBoolString(%q) = %v, %v", s, got, err)
		}
	}
	for _, s := range []string{"false", "no", "N", "0", "off"} {
		got, err := ParseBoolString(s)
		if err != nil || got {
			t.Errorf("ParseBoolString(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseBoolString("maybe"); err == nil {
		t.Error("expected error for invalid bool")
	}
}

// =============================================================================
// ERROR MAPPING TESTS
// =============================================================================

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	usage := NewUsageError("diff", "diff needs two files", "")
	if got := ExitCode(usage); got != ExitUsageError {
		t.Errorf("ExitCode(usage) = %d, want %d", got, ExitUsageError)
	}
	if got := ExitCode(errors.New("invalid configuration: bad")); got != ExitConfigError {
		t.Errorf("ExitCode(config) = %d, want %d", got, ExitConfigError)
	}
	if got := ExitCode(errors.New("boom")); got != ExitGeneralError {
		t.Errorf("ExitCode(general) = %d, want %d", got, ExitGeneralError)
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewCommandError("export", "write", "disk full", inner)
	if !errors.Is(err, inner) {
		t.Error("CommandError should unwrap to inner error")
	}
}
