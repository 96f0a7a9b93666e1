// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jeranaias/corrbench/internal/sample"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter renders batches as JSON arrays or JSONL streams in one
// of the training-data layouts.
type JSONExporter struct {
	format Format
	lines  bool
}

// NewJSONExporter creates an exporter for a JSON-based format.
func NewJSONExporter(format Format, opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{format: format, lines: opts.Lines}
}

// FileExtension returns ".jsonl" in lines mode, ".json" otherwise.
func (e *JSONExporter) FileExtension() string {
	if e.lines {
		return ".jsonl"
	}
	return ".json"
}

// MimeType returns the MIME type for the export.
func (e *JSONExporter) MimeType() string {
	if e.lines {
		return "application/jsonl"
	}
	return "application/json"
}

// Export renders every sample of the batch in the configured layout.
func (e *JSONExporter) Export(batch *Batch) ([]byte, error) {
	if batch == nil || len(batch.Samples) == 0 {
		return nil, ErrNothingToExport
	}

	records := make([]any, 0, len(batch.Samples))
	for _, s := range batch.Samples {
		rec, err := e.record(s)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if e.lines {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return nil, fmt.Errorf("failed to serialize record: %w", err)
			}
		}
		return buf.Bytes(), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to serialize batch: %w", err)
	}
	return buf.Bytes(), nil
}

// record maps one sample into the configured layout.
func (e *JSONExporter) record(s *sample.Sample) (any, error) {
	instruction := s.CurrentInstruction()
	output := s.CurrentOutput()

	switch e.format {
	case FormatMessages:
		return messagesRecord{
			ID: s.ID,
			Messages: []chatMessage{
				{Role: "user", Content: instruction},
				{Role: "assistant", Content: output},
			},
			OriginChunk: s.Chunk,
			Status:      s.Status.String(),
		}, nil

	case FormatAlpaca:
		return alpacaRecord{
			Instruction: instruction,
			Input:       "",
			Output:      output,
			ID:          s.ID,
		}, nil

	case FormatShareGPT:
		return sharegptRecord{
			Conversations: []sharegptTurn{
				{From: "human", Value: instruction},
				{From: "gpt", Value: output},
			},
			ID: s.ID,
		}, nil

	case FormatQueryResponse:
		return queryResponseRecord{
			Query:    instruction,
			Response: output,
			ID:       s.ID,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
	}
}

// =============================================================================
// RECORD LAYOUTS
// =============================================================================

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRecord struct {
	ID          string        `json:"id"`
	Messages    []chatMessage `json:"messages"`
	OriginChunk string        `json:"origin_chunk"`
	Status      string        `json:"status"`
}

type alpacaRecord struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	ID          string `json:"id"`
}

type sharegptTurn struct {
	From  string `json:"from"`
	Value string `json:"value"`
}

type sharegptRecord struct {
	Conversations []sharegptTurn `json:"conversations"`
	ID            string         `json:"id"`
}

type queryResponseRecord struct {
	Query    string `json:"query"`
	Response string `json:"response"`
	ID       string `json:"id"`
}
