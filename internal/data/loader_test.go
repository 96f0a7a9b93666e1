// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/jeranaias/corrbench/internal/sample"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const smallCSV = "instruction,output,chunk\n" +
	"什么是机器学习?,机器学习是AI的分支。,ref-1\n" +
	"What is 24h?,A day has 24h.,ref-2\n" +
	"q3,a3,ref-3\n"

func TestNewLoader_ValidatesColumns(t *testing.T) {
	path := writeCSV(t, "instruction,answer\nq,a\n")
	_, err := NewLoader(path, 10)
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestNewLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.csv"), 10)
	assert.Error(t, err)
}

func TestLoadNextBatch(t *testing.T) {
	l, err := NewLoader(writeCSV(t, smallCSV), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, l.TotalRows())

	first := l.LoadNextBatch()
	require.Len(t, first, 2)
	assert.Equal(t, "0", first[0].ID)
	assert.Equal(t, "什么是机器学习?", first[0].Instruction)
	assert.Equal(t, "ref-2", first[1].Chunk)

	second := l.LoadNextBatch()
	require.Len(t, second, 1)
	assert.Equal(t, "2", second[0].ID)

	assert.Empty(t, l.LoadNextBatch(), "exhausted file must yield no batch")
	assert.Equal(t, 3, l.Loaded())
}

func TestLoader_GBKFallback(t *testing.T) {
	gbk, _, err := transform.Bytes(simplifiedchinese.GBK.NewEncoder(), []byte(smallCSV))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "gbk.csv")
	require.NoError(t, os.WriteFile(path, gbk, 0o644))

	l, err := NewLoader(path, 10)
	require.NoError(t, err)
	batch := l.LoadNextBatch()
	require.NotEmpty(t, batch)
	assert.Equal(t, "什么是机器学习?", batch[0].Instruction, "GBK bytes must decode back to UTF-8")
}

func TestLoader_BOMHeader(t *testing.T) {
	l, err := NewLoader(writeCSV(t, "\ufeffinstruction,output,chunk\nq,a,c\n"), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, l.TotalRows())
}

func TestUpdateStatusAndProgress(t *testing.T) {
	l, err := NewLoader(writeCSV(t, smallCSV), 10)
	require.NoError(t, err)
	l.LoadNextBatch()

	require.NoError(t, l.UpdateStatus("1", sample.StatusCorrected))
	require.NoError(t, l.UpdateStatus("2", sample.StatusDiscarded))
	assert.ErrorIs(t, l.UpdateStatus("99", sample.StatusCorrected), ErrSampleNotFound)

	processed, loaded := l.Progress()
	assert.Equal(t, 2, processed)
	assert.Equal(t, 3, loaded)
}

func TestShouldLoadNextBatch(t *testing.T) {
	// 3 rows, batch of 2: after loading the first batch the margin of 10
	// immediately asks for more; once everything is loaded it stops.
	l, err := NewLoader(writeCSV(t, smallCSV), 2)
	require.NoError(t, err)

	l.LoadNextBatch()
	assert.True(t, l.ShouldLoadNextBatch())

	l.LoadNextBatch()
	assert.False(t, l.ShouldLoadNextBatch(), "no more rows to load")
}

func TestForEachBatch(t *testing.T) {
	l, err := NewLoader(writeCSV(t, smallCSV), 2)
	require.NoError(t, err)

	var sizes []int
	var ids []string
	err = l.ForEachBatch(func(batch []*sample.Sample) error {
		sizes = append(sizes, len(batch))
		for _, s := range batch {
			ids = append(ids, s.ID)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, sizes)
	assert.Equal(t, []string{"0", "1", "2"}, ids)
}
