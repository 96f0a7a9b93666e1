// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package data loads question-answer samples from CSV files in batches.
//
// Input files must carry instruction, output and chunk columns. Files
// are decoded as UTF-8 with a GBK fallback, matching the encodings seen
// in Chinese-language annotation exports. A file watcher with throttled
// notifications lets the UI pick up external edits to the source file.
package data
