// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration inspection and editing.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jeranaias/corrbench/internal/config"
)

// HandleConfig implements the config command: show, path, init, set.
func HandleConfig(args Args, cfg *config.Config) error {
	parser := NewArgParser(args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		return configShow(args, cfg)
	case "path":
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	case "init":
		return configInit(cfg)
	case "set":
		return configSet(parser, cfg)
	default:
		return NewUsageError("config",
			fmt.Sprintf("unknown config subcommand %q", parser.Subcommand()),
			"corrbench config [show|path|init|set KEY VALUE]")
	}
}

func configPath() (string, error) {
	if env := os.Getenv("CORRBENCH_CONFIG"); env != "" {
		return env, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func configShow(args Args, cfg *config.Config) error {
	if args.JSON {
		return NewJSONResponse("config", cfg).Print()
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	fmt.Println(labelValue("batch_size", strconv.Itoa(cfg.Review.BatchSize)))
	fmt.Println(labelValue("resume_session", strconv.FormatBool(cfg.Review.ResumeSession)))
	fmt.Println(labelValue("watch_source", strconv.FormatBool(cfg.Review.WatchSource)))
	fmt.Println(labelValue("format", cfg.Export.Format))
	fmt.Println(labelValue("output_dir", orDefault(cfg.Export.OutputDir, "(working directory)")))
	fmt.Println(labelValue("theme", cfg.UI.Theme))
	dbPath, err := cfg.DatabasePath()
	if err == nil {
		fmt.Println(labelValue("database", dbPath))
	}
	return nil
}

func configInit(cfg *config.Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration already exists at %s", path)
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render("✓") + " wrote " + path)
	return nil
}

func configSet(parser *ArgParser, cfg *config.Config) error {
	key := parser.Positional(1)
	value := parser.Positional(2)
	if key == "" || value == "" {
		return NewUsageError("config", "set needs a key and a value",
			"corrbench config set review.batch_size 25")
	}

	switch key {
	case "review.batch_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("configuration value %q is not a number", value)
		}
		cfg.Review.BatchSize = n
	case "review.resume_session":
		b, err := ParseBoolString(value)
		if err != nil {
			return err
		}
		cfg.Review.ResumeSession = b
	case "review.watch_source":
		b, err := ParseBoolString(value)
		if err != nil {
			return err
		}
		cfg.Review.WatchSource = b
	case "export.format":
		cfg.Export.Format = value
	case "export.output_dir":
		cfg.Export.OutputDir = value
	case "export.lines":
		b, err := ParseBoolString(value)
		if err != nil {
			return err
		}
		cfg.Export.Lines = b
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.show_chunk":
		b, err := ParseBoolString(value)
		if err != nil {
			return err
		}
		cfg.UI.ShowChunk = b
	case "ui.markdown_preview":
		b, err := ParseBoolString(value)
		if err != nil {
			return err
		}
		cfg.UI.MarkdownPreview = b
	case "storage.database_path":
		cfg.Storage.DatabasePath = value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
