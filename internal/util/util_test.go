// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")
	data := []byte("hello, world!")

	err := AtomicWriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "subdir", "deep", "test.txt")

	if err := AtomicWriteFile(path, []byte("test data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File was not created: %v", err)
	}
}

func TestAtomicWriteFile_ReplacesExisting(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWriteFile(path, []byte("new content"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "new content" {
		t.Errorf("got %q, want %q", string(content), "new content")
	}
}

func TestAtomicWriteFile_NoTempLeftover(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	if err := AtomicWriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry in dir, got %d", len(entries))
	}
}

// =============================================================================
// STRING WIDTH TESTS
// =============================================================================

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"证据", 4},
		{"A级证据", 7},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.input); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"ascii truncation", "hello world", 8, "hello..."},
		{"cjk truncation", "证据水平分级", 7, "证据..."},
		{"tiny width", "hello", 2, "he"},
		{"zero width", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWidth(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadWidth(t *testing.T) {
	if got := PadWidth("ab", 5); got != "ab   " {
		t.Errorf("PadWidth ascii = %q", got)
	}
	// 证据 is 4 columns wide, so one space brings it to 5
	if got := PadWidth("证据", 5); got != "证据 " {
		t.Errorf("PadWidth cjk = %q", got)
	}
	if got := PadWidth("abcdef", 3); got != "abcdef" {
		t.Errorf("PadWidth overflow = %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		input    string
		maxRunes int
		want     string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"证据水平分级标准", 6, "证据水..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateRunes(tt.input, tt.maxRunes); got != tt.want {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("one\ntwo\nthree"); got != "one" {
		t.Errorf("FirstLine = %q", got)
	}
	if got := FirstLine("one\r\ntwo"); got != "one" {
		t.Errorf("FirstLine crlf = %q", got)
	}
	if got := FirstLine("single"); got != "single" {
		t.Errorf("FirstLine single = %q", got)
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("证据水平"); got != 4 {
		t.Errorf("RuneLen = %d, want 4", got)
	}
}
