// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_Rejections(t *testing.T) {
	cfg := Default()
	cfg.Review.BatchSize = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Export.Format = "parquet"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.UI.Theme = "solarized"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[review]\nbatch_size = 25\n\n[export]\nformat = \"alpaca\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CORRBENCH_CONFIG", path)
	t.Setenv("CORRBENCH_BATCH_SIZE", "")
	t.Setenv("CORRBENCH_EXPORT_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Review.BatchSize)
	assert.Equal(t, "alpaca", cfg.Export.Format)
	// Unset values keep their defaults
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CORRBENCH_CONFIG", filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("CORRBENCH_BATCH_SIZE", "10")
	t.Setenv("CORRBENCH_EXPORT_FORMAT", "sharegpt")
	t.Setenv("CORRBENCH_THEME", "light")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Review.BatchSize)
	assert.Equal(t, "sharegpt", cfg.Export.Format)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoad_InvalidFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[review]\nbatch_size = 9999\n"), 0o644))
	t.Setenv("CORRBENCH_CONFIG", path)
	t.Setenv("CORRBENCH_BATCH_SIZE", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Review.BatchSize = 77
	require.NoError(t, cfg.Save(path))

	t.Setenv("CORRBENCH_CONFIG", path)
	t.Setenv("CORRBENCH_BATCH_SIZE", "")
	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 77, loaded.Review.BatchSize)
}
