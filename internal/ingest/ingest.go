// Package ingest reads statement CSV exports and streams their rows
// through the normalizer, producing one merged transaction sequence.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledgerize-dev/ledgerize/internal/format"
	"github.com/ledgerize-dev/ledgerize/internal/model"
	"github.com/ledgerize-dev/ledgerize/internal/normalize"
	"github.com/ledgerize-dev/ledgerize/internal/rules"
)

// Scan returns the CSV files in dir, sorted by name for deterministic
// ingestion order. A missing directory yields no files.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Ingest normalizes all files into one sequence in file-then-row order.
// An unknown source or unrecognized date aborts the whole batch; there is
// no per-file recovery.
func Ingest(paths []string, catalog *format.Catalog, cat *rules.Categorizer) ([]model.Transaction, error) {
	var txns []model.Transaction
	for _, path := range paths {
		f, err := catalog.Lookup(path)
		if err != nil {
			return nil, err
		}
		rows, err := File(path, f, cat)
		if err != nil {
			return nil, err
		}
		txns = append(txns, rows...)
	}
	return txns, nil
}

// File normalizes one statement file with an already-resolved format.
// Noise rows are dropped silently.
func File(path string, f format.AccountFormat, cat *rules.Categorizer) ([]model.Transaction, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer fh.Close()

	rows, err := readRows(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	var txns []model.Transaction
	for i, row := range rows {
		txn, ok, err := normalize.Row(row, f, cat)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filepath.Base(path), i+2, err)
		}
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// readRows parses a header-plus-rows CSV into header-mapped rows. Extra
// columns are carried along and ignored by the normalizer; short rows
// simply leave trailing columns absent.
func readRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
