// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the corrbench application.
//
// This package contains common helper functions used throughout the
// application for display-width string handling and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: display-width truncation with ellipsis, CJK aware
//   - PadWidth: pad a string to a display width
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateWidth(longText, 50)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
