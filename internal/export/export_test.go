// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/corrbench/internal/sample"
)

func correctedSample(id, instruction, output string) *sample.Sample {
	s := sample.New(id, instruction, output, "chunk-"+id)
	s.Status = sample.StatusCorrected
	return s
}

func testBatch(t *testing.T) *Batch {
	t.Helper()
	discarded := sample.New("9", "skip", "me", "")
	discarded.Status = sample.StatusDiscarded

	batch, err := NewBatch("data.csv", []*sample.Sample{
		correctedSample("0", "先修正的问题", "修正后的答案"),
		correctedSample("1", "What is 24h?", "A day has 24h."),
		discarded,
		sample.New("10", "unprocessed", "sample", ""),
	})
	require.NoError(t, err)
	return batch
}

func TestNewBatch_FiltersToCorrected(t *testing.T) {
	batch := testBatch(t)
	assert.Len(t, batch.Samples, 2)
	assert.NotEmpty(t, batch.ID)
}

func TestNewBatch_EmptyFails(t *testing.T) {
	_, err := NewBatch("data.csv", []*sample.Sample{sample.New("0", "q", "a", "")})
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"messages", "alpaca", "sharegpt", "query-response", "html", "Messages"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseFormat("parquet")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestJSONExporter_Messages(t *testing.T) {
	content, err := NewJSONExporter(FormatMessages, nil).Export(testBatch(t))
	require.NoError(t, err)

	var records []struct {
		ID       string `json:"id"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		OriginChunk string `json:"origin_chunk"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(content, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "user", records[0].Messages[0].Role)
	assert.Equal(t, "先修正的问题", records[0].Messages[0].Content)
	assert.Equal(t, "assistant", records[0].Messages[1].Role)
	assert.Equal(t, "chunk-0", records[0].OriginChunk)
	assert.Equal(t, "corrected", records[0].Status)
}

func TestJSONExporter_PrefersFinalText(t *testing.T) {
	s := correctedSample("0", "loaded", "loaded answer")
	s.EditedOutput = "edited answer"
	s.FinalOutput = "final answer"
	batch, err := NewBatch("data.csv", []*sample.Sample{s})
	require.NoError(t, err)

	content, err := NewJSONExporter(FormatQueryResponse, nil).Export(batch)
	require.NoError(t, err)

	var records []struct {
		Query    string `json:"query"`
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(content, &records))
	assert.Equal(t, "final answer", records[0].Response)
}

func TestJSONExporter_AllLayouts(t *testing.T) {
	batch := testBatch(t)
	for _, format := range []Format{FormatMessages, FormatAlpaca, FormatShareGPT, FormatQueryResponse} {
		content, err := NewJSONExporter(format, nil).Export(batch)
		require.NoError(t, err, format)
		assert.True(t, json.Valid(content), "invalid JSON for %s", format)
	}
}

func TestJSONExporter_Lines(t *testing.T) {
	e := NewJSONExporter(FormatAlpaca, &Options{Lines: true})
	assert.Equal(t, ".jsonl", e.FileExtension())

	content, err := e.Export(testBatch(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "invalid JSONL line %q", line)
	}
}

func TestHTMLExporter(t *testing.T) {
	s := correctedSample("0", "q", "a")
	s.OutputDiff = "答案是<false>A</false><true>B</true>"
	batch, err := NewBatch("data.csv", []*sample.Sample{s})
	require.NoError(t, err)

	content, err := NewHTMLExporter(nil).Export(batch)
	require.NoError(t, err)
	page := string(content)

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "katex", "KaTeX header must be embedded")
	assert.Contains(t, page, `<span class="diff-del">A</span>`)
	assert.Contains(t, page, `<span class="diff-add">B</span>`)
	assert.NotContains(t, page, "<false>", "raw markers must not leak")
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	batch := testBatch(t)

	path, err := ExportToFile(batch, NewJSONExporter(FormatMessages, nil), &Options{OutputDir: dir})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, dir))
	base := path[len(dir)+1:]
	assert.True(t, strings.HasPrefix(base, "data_"), "filename %q must start with the source base", base)
	assert.True(t, strings.HasSuffix(base, "_2.json"), "filename %q must carry the count", base)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(content))
}
