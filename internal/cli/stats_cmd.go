// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stats_cmd.go - Review progress summary for a source file.

package cli

import (
	"fmt"

	"github.com/jeranaias/corrbench/internal/config"
	"github.com/jeranaias/corrbench/internal/data"
	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/storage"
)

// statsResult is the JSON payload for the stats command.
type statsResult struct {
	Source      string `json:"source"`
	Total       int    `json:"total"`
	Corrected   int    `json:"corrected"`
	Discarded   int    `json:"discarded"`
	Unprocessed int    `json:"unprocessed"`
}

// HandleStats prints how much of a source file has been reviewed.
func HandleStats(args Args, cfg *config.Config) error {
	if args.Source == "" {
		return NewUsageError("stats", "stats needs a source file",
			"corrbench stats <file.csv> [--json]")
	}

	// Row count comes from the file itself, status counts from the
	// database; rows never touched in review have no stored state.
	loader, err := data.NewLoader(args.Source, data.DefaultBatchSize)
	if err != nil {
		return err
	}
	total := loader.TotalRows()

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.CountByStatus(args.Source)
	if err != nil {
		return err
	}

	corrected := counts[sample.StatusCorrected.String()]
	discarded := counts[sample.StatusDiscarded.String()]
	result := statsResult{
		Source:      args.Source,
		Total:       total,
		Corrected:   corrected,
		Discarded:   discarded,
		Unprocessed: total - corrected - discarded,
	}

	if args.JSON {
		return NewJSONResponse("stats", result).Print()
	}

	fmt.Println(TitleStyle.Render("Review Progress"))
	fmt.Println(labelValue("Source", result.Source))
	fmt.Println(labelValue("Total", fmt.Sprintf("%d", result.Total)))
	fmt.Println(labelValue("Corrected", fmt.Sprintf("%d", result.Corrected)))
	fmt.Println(labelValue("Discarded", fmt.Sprintf("%d", result.Discarded)))
	fmt.Println(labelValue("Remaining", fmt.Sprintf("%d", result.Unprocessed)))
	if result.Total > 0 {
		pct := float64(result.Corrected+result.Discarded) / float64(result.Total) * 100
		fmt.Println(labelValue("Done", fmt.Sprintf("%.1f%%", pct)))
	}
	return nil
}
