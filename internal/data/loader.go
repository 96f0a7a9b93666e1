// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package data

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/jeranaias/corrbench/internal/sample"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrMissingColumns = errors.New("csv is missing required columns")
	ErrBadEncoding    = errors.New("csv is neither valid UTF-8 nor valid GBK")
	ErrSampleNotFound = errors.New("sample not found")
)

// requiredColumns must all be present in the CSV header.
var requiredColumns = []string{"instruction", "output", "chunk"}

// DefaultBatchSize is the number of samples loaded per batch.
const DefaultBatchSize = 50

// loadAheadMargin: the next batch loads once fewer than this many
// unprocessed samples remain.
const loadAheadMargin = 10

// =============================================================================
// LOADER
// =============================================================================

// Loader reads samples from a CSV file in batches and tracks their
// review status. Safe for use from the UI goroutine and the file
// watcher concurrently.
type Loader struct {
	mu sync.Mutex

	path      string
	batchSize int

	columns map[string]int // header name -> column index
	records [][]string     // data rows, header excluded

	samples []*sample.Sample // materialized so far, in row order
	batch   int              // next batch number to load
}

// NewLoader opens and validates a CSV file. The header must contain the
// instruction, output and chunk columns; the file is decoded as UTF-8
// with a GBK fallback.
func NewLoader(path string, batchSize int) (*Loader, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if err := sample.ValidateBatchSize(batchSize); err != nil {
		return nil, err
	}

	columns, records, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	return &Loader{
		path:      path,
		batchSize: batchSize,
		columns:   columns,
		records:   records,
	}, nil
}

// parseFile reads, decodes and parses a CSV file, validating its header.
func parseFile(path string) (map[string]int, [][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}

	decoded, err := decodeText(raw)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("%w: file is empty", ErrMissingColumns)
		}
		return nil, nil, fmt.Errorf("failed to parse csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[trimBOM(name)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %v (need %v)", ErrMissingColumns, missing, requiredColumns)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse csv rows: %w", err)
	}
	return columns, records, nil
}

// decodeText returns text as UTF-8, transcoding from GBK when the bytes
// are not already valid UTF-8.
func decodeText(raw []byte) ([]byte, error) {
	if utf8.Valid(raw) {
		return raw, nil
	}
	decoded, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	return decoded, nil
}

// trimBOM strips a UTF-8 byte order mark from a header cell.
func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}

// Path returns the CSV file path this loader reads from.
func (l *Loader) Path() string {
	return l.path
}

// TotalRows returns the number of data rows in the file.
func (l *Loader) TotalRows() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// =============================================================================
// BATCH LOADING
// =============================================================================

// LoadNextBatch materializes the next batch of samples. It returns an
// empty slice once the file is exhausted.
func (l *Loader) LoadNextBatch() []*sample.Sample {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadBatchLocked()
}

func (l *Loader) loadBatchLocked() []*sample.Sample {
	start := l.batch * l.batchSize
	if start >= len(l.records) {
		return nil
	}
	end := start + l.batchSize
	if end > len(l.records) {
		end = len(l.records)
	}

	batch := make([]*sample.Sample, 0, end-start)
	for row := start; row < end; row++ {
		batch = append(batch, l.toSample(row))
	}
	l.samples = append(l.samples, batch...)
	l.batch++
	return batch
}

// toSample converts a CSV row into a sample, using the row index as ID.
func (l *Loader) toSample(row int) *sample.Sample {
	rec := l.records[row]
	cell := func(name string) string {
		idx := l.columns[name]
		if idx >= len(rec) {
			return ""
		}
		return rec[idx]
	}
	return sample.New(strconv.Itoa(row), cell("instruction"), cell("output"), cell("chunk"))
}

// ShouldLoadNextBatch reports whether the operator is close enough to
// the end of the loaded samples that the next batch should be fetched.
func (l *Loader) ShouldLoadNextBatch() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.batch*l.batchSize >= len(l.records) {
		return false
	}
	processed := 0
	for _, s := range l.samples {
		if s.Processed() {
			processed++
		}
	}
	return processed >= len(l.samples)-loadAheadMargin
}

// ForEachBatch walks every batch of the file without retaining samples
// between batches, for streaming workloads like whole-file export.
func (l *Loader) ForEachBatch(fn func([]*sample.Sample) error) error {
	l.mu.Lock()
	total := len(l.records)
	size := l.batchSize
	l.mu.Unlock()

	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}
		batch := make([]*sample.Sample, 0, end-start)
		l.mu.Lock()
		for row := start; row < end; row++ {
			batch = append(batch, l.toSample(row))
		}
		l.mu.Unlock()
		if err := fn(batch); err != nil {
			return err
		}
	}
	return nil
}

// Reload re-reads the file after an on-disk change and rebuilds the
// samples loaded so far. Review state (status, edits) is not carried
// over; callers restore it from storage afterwards.
func (l *Loader) Reload() error {
	columns, records, err := parseFile(l.path)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.columns = columns
	l.records = records

	loaded := len(l.samples)
	if loaded > len(records) {
		loaded = len(records)
	}
	l.samples = l.samples[:0]
	for row := 0; row < loaded; row++ {
		l.samples = append(l.samples, l.toSample(row))
	}
	l.batch = (loaded + l.batchSize - 1) / l.batchSize
	return nil
}

// =============================================================================
// SAMPLE ACCESS
// =============================================================================

// Get returns the loaded sample at index, or nil when out of bounds.
func (l *Loader) Get(index int) *sample.Sample {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.samples) {
		return nil
	}
	return l.samples[index]
}

// Loaded returns the number of samples materialized so far.
func (l *Loader) Loaded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.samples)
}

// Samples returns the loaded samples in row order.
func (l *Loader) Samples() []*sample.Sample {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*sample.Sample, len(l.samples))
	copy(out, l.samples)
	return out
}

// UpdateStatus sets the status of the sample with the given ID.
func (l *Loader) UpdateStatus(id string, status sample.Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.samples {
		if s.ID == id {
			s.Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", ErrSampleNotFound, id)
}

// Progress returns how many loaded samples are processed, and how many
// are loaded in total.
func (l *Loader) Progress() (processed, loaded int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.samples {
		if s.Processed() {
			processed++
		}
	}
	return processed, len(l.samples)
}
