// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for corrbench.
//
// TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file location (in order of precedence):
//   - $CORRBENCH_CONFIG
//   - ~/.corrbench/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/corrbench/internal/export"
	"github.com/jeranaias/corrbench/internal/sample"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete corrbench configuration.
type Config struct {
	Version string `toml:"version"`

	Review  ReviewConfig  `toml:"review"`
	Export  ExportConfig  `toml:"export"`
	UI      UIConfig      `toml:"ui"`
	Storage StorageConfig `toml:"storage"`
}

// ReviewConfig controls sample loading and the review loop.
type ReviewConfig struct {
	// BatchSize is how many samples load per batch (1-1000)
	BatchSize int `toml:"batch_size"`
	// ResumeSession restores the last position when reopening a file
	ResumeSession bool `toml:"resume_session"`
	// WatchSource reloads when the CSV changes on disk
	WatchSource bool `toml:"watch_source"`
}

// ExportConfig controls training-data export.
type ExportConfig struct {
	// Format is the default export format:
	// "messages", "alpaca", "sharegpt", "query-response" or "html"
	Format string `toml:"format"`
	// OutputDir is where export files are written ("" = working directory)
	OutputDir string `toml:"output_dir"`
	// Lines switches JSON exports to JSONL
	Lines bool `toml:"lines"`
}

// UIConfig controls the review TUI.
type UIConfig struct {
	// Theme is "light" or "dark"; also used for HTML export styling
	Theme string `toml:"theme"`
	// ShowChunk displays the source chunk pane
	ShowChunk bool `toml:"show_chunk"`
	// MarkdownPreview renders sample text as markdown in the viewer
	MarkdownPreview bool `toml:"markdown_preview"`
}

// StorageConfig controls progress persistence.
type StorageConfig struct {
	// DatabasePath is the SQLite progress database
	// ("" = ~/.corrbench/review.db)
	DatabasePath string `toml:"database_path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Review: ReviewConfig{
			BatchSize:     50,
			ResumeSession: true,
			WatchSource:   true,
		},
		Export: ExportConfig{
			Format:    string(export.FormatMessages),
			OutputDir: "",
			Lines:     false,
		},
		UI: UIConfig{
			Theme:           "dark",
			ShowChunk:       true,
			MarkdownPreview: true,
		},
		Storage: StorageConfig{
			DatabasePath: "",
		},
	}
}

// Dir returns the corrbench configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".corrbench"), nil
}

// DatabasePath resolves the progress database location.
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.DatabasePath != "" {
		return c.Storage.DatabasePath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "review.db"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, falling back to defaults when none
// exists, then applies environment overrides and validates.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("CORRBENCH_CONFIG")
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies CORRBENCH_* environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("CORRBENCH_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Review.BatchSize = n
		}
	}
	if v := os.Getenv("CORRBENCH_EXPORT_FORMAT"); v != "" {
		c.Export.Format = v
	}
	if v := os.Getenv("CORRBENCH_OUTPUT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	if v := os.Getenv("CORRBENCH_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("CORRBENCH_DB"); v != "" {
		c.Storage.DatabasePath = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ErrInvalidConfig wraps all configuration validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if err := sample.ValidateBatchSize(c.Review.BatchSize); err != nil {
		return fmt.Errorf("%w: review.batch_size: %v", ErrInvalidConfig, err)
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("%w: export.format: %v", ErrInvalidConfig, err)
	}
	if c.UI.Theme != "light" && c.UI.Theme != "dark" {
		return fmt.Errorf("%w: ui.theme must be \"light\" or \"dark\", got %q", ErrInvalidConfig, c.UI.Theme)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to path, creating directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
