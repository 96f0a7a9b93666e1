// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes confirmed samples to training-data formats.
//
// Supported targets: OpenAI-style messages, Alpaca, ShareGPT and plain
// query-response JSON (plus JSONL variants), and a standalone HTML
// review page with the tagged diffs rendered for human sign-off.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/util"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNothingToExport is returned when no corrected samples exist
	ErrNothingToExport = errors.New("no corrected samples to export")
	// ErrUnknownFormat is returned for an unrecognized format name
	ErrUnknownFormat = errors.New("unknown export format")
)

// =============================================================================
// FORMATS
// =============================================================================

// Format names a training-data export layout.
type Format string

const (
	FormatMessages      Format = "messages"
	FormatAlpaca        Format = "alpaca"
	FormatShareGPT      Format = "sharegpt"
	FormatQueryResponse Format = "query-response"
	FormatHTML          Format = "html"
)

// ParseFormat validates a format name from config or the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatMessages, FormatAlpaca, FormatShareGPT, FormatQueryResponse, FormatHTML:
		return Format(strings.ToLower(name)), nil
	default:
		return "", fmt.Errorf("%w: %q (want messages, alpaca, sharegpt, query-response or html)", ErrUnknownFormat, name)
	}
}

// =============================================================================
// BATCH
// =============================================================================

// Batch is the unit of export: the corrected samples of one source file.
type Batch struct {
	ID        string
	Source    string
	CreatedAt time.Time
	Samples   []*sample.Sample
}

// NewBatch collects the corrected samples out of a review set. Samples
// in any other state are skipped; a batch with nothing corrected is an
// error rather than an empty file.
func NewBatch(source string, samples []*sample.Sample) (*Batch, error) {
	var corrected []*sample.Sample
	for _, s := range samples {
		if s.Status == sample.StatusCorrected {
			corrected = append(corrected, s)
		}
	}
	if len(corrected) == 0 {
		return nil, ErrNothingToExport
	}
	return &Batch{
		ID:        uuid.NewString(),
		Source:    source,
		CreatedAt: time.Now(),
		Samples:   corrected,
	}, nil
}

// =============================================================================
// EXPORTER INTERFACE
// =============================================================================

// Exporter converts a batch to one output format.
type Exporter interface {
	// Export renders the batch in the target format.
	Export(batch *Batch) ([]byte, error)

	// FileExtension returns the output extension (e.g. ".json").
	FileExtension() string

	// MimeType returns the MIME type of the exported format.
	MimeType() string
}

// ForFormat returns the exporter for a format.
func ForFormat(format Format, opts *Options) (Exporter, error) {
	switch format {
	case FormatMessages, FormatAlpaca, FormatShareGPT, FormatQueryResponse:
		return NewJSONExporter(format, opts), nil
	case FormatHTML:
		return NewHTMLExporter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is where files are written. Default: working directory.
	OutputDir string

	// Lines switches JSON exports to JSONL (one record per line).
	Lines bool

	// IncludeMetadata adds the header section to HTML exports.
	IncludeMetadata bool

	// Theme for HTML export ("light" or "dark").
	Theme string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		Lines:           false,
		IncludeMetadata: true,
		Theme:           "light",
	}
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// ExportToFile writes a batch through an exporter and returns the
// output path. Filenames follow {source-base}_{timestamp}_{count}{ext}
// so successive exports of the same file never collide.
func ExportToFile(batch *Batch, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(batch)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(batch.Source), filepath.Ext(batch.Source))
	if base == "" {
		base = "export"
	}
	filename := fmt.Sprintf("%s_%s_%d%s",
		base,
		batch.CreatedAt.Format("20060102_150405"),
		len(batch.Samples),
		exporter.FileExtension(),
	)

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}

	path := filepath.Join(outDir, filename)
	if err := util.AtomicWriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
