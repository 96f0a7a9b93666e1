// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff_cmd.go - One-shot tagged diff between two text files.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/corrbench/internal/diff"
	"github.com/jeranaias/corrbench/internal/render"
)

// diffResult is the JSON payload for the diff command.
type diffResult struct {
	Tagged     string `json:"tagged"`
	Deletions  int    `json:"deletions"`
	Insertions int    `json:"insertions"`
	Changed    bool   `json:"changed"`
}

// HandleDiff reads two files and prints the tagged diff of their
// contents. The first file is treated as the original, the second as
// the corrected version. Either path may be "-" to read that side
// from stdin; only one side can.
func HandleDiff(args Args) error {
	parser := NewArgParser(args.Raw)

	if parser.PositionalCount() < 2 {
		return NewUsageError("diff", "diff needs two files",
			"corrbench diff <original> <corrected> [--render] [--stats] [--json]")
	}
	if parser.Positional(0) == "-" && parser.Positional(1) == "-" {
		return NewUsageError("diff", "only one side can come from stdin",
			"corrbench diff <original> <corrected>")
	}

	original, err := readDiffInput(parser.Positional(0))
	if err != nil {
		return NewCommandError("diff", "read", parser.Positional(0), err)
	}
	corrected, err := readDiffInput(parser.Positional(1))
	if err != nil {
		return NewCommandError("diff", "read", parser.Positional(1), err)
	}

	tagged, err := diff.Compute(string(original), string(corrected))
	if err != nil {
		return NewCommandError("diff", "compute", "diff failed", err)
	}

	stats := diff.ComputeStats(tagged)

	if args.JSON {
		resp := NewJSONResponse("diff", diffResult{
			Tagged:     tagged,
			Deletions:  stats.Deletions,
			Insertions: stats.Insertions,
			Changed:    stats.HasChanges(),
		})
		return resp.Print()
	}

	if parser.BoolFlag("render") {
		fmt.Println(render.Terminal(tagged))
	} else {
		fmt.Println(tagged)
	}

	if parser.BoolFlag("stats") {
		fmt.Fprintf(os.Stderr, "%d deleted, %d inserted\n", stats.Deletions, stats.Insertions)
	}
	return nil
}

// readDiffInput reads a diff side from a file, or from stdin for "-".
func readDiffInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
