// Package export splits normalized transactions into income and expense
// partitions and writes them as CSV ledger files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledgerize-dev/ledgerize/internal/model"
)

// Header is the CSV header for the exported ledger files. Type is implied
// by which file a row lands in and is dropped after the split.
const Header = "Date,Description,Amount,Category,Notes,Source"

const (
	numFields   = 6
	colDate     = 0
	colDesc     = 1
	colAmount   = 2
	colCategory = 3
	colNotes    = 4
	colSource   = 5
)

// File names written under the ledger directory.
const (
	IncomeFile   = "income.csv"
	ExpensesFile = "expenses.csv"
)

// Ledger holds transactions partitioned by type.
type Ledger struct {
	Income   []model.Transaction
	Expenses []model.Transaction
}

// Split partitions transactions by type and sorts each partition by date
// ascending. The sort is stable, so same-day rows keep ingestion order;
// rows without a date sort first.
func Split(txns []model.Transaction) Ledger {
	var l Ledger
	for _, t := range txns {
		if t.Type == model.TypeIncome {
			l.Income = append(l.Income, t)
		} else {
			l.Expenses = append(l.Expenses, t)
		}
	}
	sortByDate(l.Income)
	sortByDate(l.Expenses)
	return l
}

func sortByDate(txns []model.Transaction) {
	// ISO dates compare correctly as strings.
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date < txns[j].Date
	})
}

// WriteTransactions writes one partition as CSV (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(marshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteLedger writes income.csv and expenses.csv under dir, creating the
// directory if needed.
func WriteLedger(dir string, l Ledger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}
	if err := writeFile(filepath.Join(dir, IncomeFile), l.Income); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, ExpensesFile), l.Expenses)
}

func writeFile(path string, txns []model.Transaction) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	if err := WriteTransactions(fh, txns); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return fh.Close()
}

func marshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.StringFixed(2)
	row[colCategory] = t.Category
	row[colNotes] = t.Notes
	row[colSource] = t.Source
	return row
}
