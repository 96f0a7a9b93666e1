// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sample defines the question-answer record reviewed by the
// correction workbench and its two-phase lifecycle: edit, then confirm
// against a tagged diff.
package sample

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// STATUS
// =============================================================================

// Status is a sample's position in the review workflow.
type Status int

const (
	// StatusUnprocessed means the sample has not been reviewed yet
	StatusUnprocessed Status = iota
	// StatusCorrected means the correction was confirmed by the operator
	StatusCorrected
	// StatusDiscarded means the sample was rejected from the dataset
	StatusDiscarded
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusUnprocessed:
		return "unprocessed"
	case StatusCorrected:
		return "corrected"
	case StatusDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// ParseStatus converts a stored status string back to a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "unprocessed":
		return StatusUnprocessed, nil
	case "corrected":
		return StatusCorrected, nil
	case "discarded":
		return StatusDiscarded, nil
	default:
		return StatusUnprocessed, fmt.Errorf("invalid status %q", s)
	}
}

// =============================================================================
// SAMPLE
// =============================================================================

// Sample is a single question-answer record under review.
//
// The Original* fields freeze the text as loaded for diffing, Edited*
// hold the phase-one edits, and Final* hold the phase-two confirmed
// text. The *Diff fields cache the tagged diff shown during
// confirmation.
type Sample struct {
	ID          string
	Instruction string // question text as loaded
	Output      string // answer text as loaded
	Chunk       string // source reference content
	Status      Status

	OriginalInstruction string
	OriginalOutput      string
	EditedInstruction   string
	EditedOutput        string
	FinalInstruction    string
	FinalOutput         string

	InstructionDiff string
	OutputDiff      string
}

// New creates an unprocessed sample and freezes the original text for
// later diff comparison.
func New(id, instruction, output, chunk string) *Sample {
	return &Sample{
		ID:                  id,
		Instruction:         instruction,
		Output:              output,
		Chunk:               chunk,
		Status:              StatusUnprocessed,
		OriginalInstruction: instruction,
		OriginalOutput:      output,
	}
}

// CurrentInstruction returns the most-reviewed instruction text:
// final, else edited, else the loaded text.
func (s *Sample) CurrentInstruction() string {
	if s.FinalInstruction != "" {
		return s.FinalInstruction
	}
	if s.EditedInstruction != "" {
		return s.EditedInstruction
	}
	return s.Instruction
}

// CurrentOutput returns the most-reviewed answer text: final, else
// edited, else the loaded text.
func (s *Sample) CurrentOutput() string {
	if s.FinalOutput != "" {
		return s.FinalOutput
	}
	if s.EditedOutput != "" {
		return s.EditedOutput
	}
	return s.Output
}

// Processed reports whether the sample has left the unprocessed state.
func (s *Sample) Processed() bool {
	return s.Status == StatusCorrected || s.Status == StatusDiscarded
}

// =============================================================================
// VALIDATION
// =============================================================================

var (
	// ErrEmptyContent is returned for empty or whitespace-only text
	ErrEmptyContent = errors.New("content must not be empty")
	// ErrIndexOutOfRange is returned for an index outside loaded samples
	ErrIndexOutOfRange = errors.New("sample index out of range")
	// ErrBadBatchSize is returned for a batch size outside 1..1000
	ErrBadBatchSize = errors.New("batch size must be between 1 and 1000")
)

// ValidateContent rejects empty or whitespace-only text.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// ValidateIndex rejects indices outside [0, total).
func ValidateIndex(index, total int) error {
	if index < 0 || index >= total {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, total)
	}
	return nil
}

// ValidateBatchSize rejects batch sizes outside 1..1000.
func ValidateBatchSize(size int) error {
	if size < 1 || size > 1000 {
		return fmt.Errorf("%w: got %d", ErrBadBatchSize, size)
	}
	return nil
}
