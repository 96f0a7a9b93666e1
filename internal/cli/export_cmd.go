// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Export corrected samples without opening the TUI.
//
// Review state lives in the progress database, so a finished (or
// half-finished) file can be exported from a script or cron job.

package cli

import (
	"fmt"

	"github.com/jeranaias/corrbench/internal/config"
	"github.com/jeranaias/corrbench/internal/data"
	"github.com/jeranaias/corrbench/internal/export"
	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/storage"
)

// exportResult is the JSON payload for the export command.
type exportResult struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Samples int    `json:"samples"`
	BatchID string `json:"batch_id"`
}

// HandleExport loads a source file, rehydrates review state from the
// progress database, and writes the corrected samples in the requested
// format.
func HandleExport(args Args, cfg *config.Config) error {
	if args.Source == "" {
		return NewUsageError("export", "export needs a source file",
			"corrbench export <file.csv> [--format FORMAT] [--output DIR] [--lines]")
	}

	parser := NewArgParser(args.Raw)

	format, err := export.ParseFormat(parser.FlagOrDefault("format", cfg.Export.Format))
	if err != nil {
		return err
	}

	samples, err := loadReviewed(args.Source, cfg)
	if err != nil {
		return err
	}

	batch, err := export.NewBatch(args.Source, samples)
	if err != nil {
		return err
	}

	opts := &export.Options{
		OutputDir:       parser.FlagOrDefault("output", cfg.Export.OutputDir),
		Lines:           parser.BoolFlag("lines") || cfg.Export.Lines,
		IncludeMetadata: true,
		Theme:           cfg.UI.Theme,
	}

	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		return err
	}

	path, err := export.ExportToFile(batch, exporter, opts)
	if err != nil {
		return err
	}

	if args.JSON {
		resp := NewJSONResponse("export", exportResult{
			Path:    path,
			Format:  string(format),
			Samples: len(batch.Samples),
			BatchID: batch.ID,
		})
		return resp.Print()
	}

	if !args.Quiet {
		fmt.Println(SuccessStyle.Render("✓") + fmt.Sprintf(" exported %d samples to %s", len(batch.Samples), path))
	}
	return nil
}

// loadReviewed loads every row of a source file and applies saved
// review state on top.
func loadReviewed(source string, cfg *config.Config) ([]*sample.Sample, error) {
	loader, err := data.NewLoader(source, cfg.Review.BatchSize)
	if err != nil {
		return nil, err
	}

	for loader.LoadNextBatch() != nil {
	}
	samples := loader.Samples()

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	for _, s := range samples {
		if _, err := store.LoadInto(source, s); err != nil {
			return nil, err
		}
	}
	return samples, nil
}
