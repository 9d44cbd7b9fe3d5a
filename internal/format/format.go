package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledgerize-dev/ledgerize/internal/model"
)

// AccountFormat describes one institution's CSV export layout.
type AccountFormat struct {
	SourceKey         string                `yaml:"source"`
	DefaultType       model.TransactionType `yaml:"type"`
	DateColumn        string                `yaml:"date"`
	DescriptionColumn string                `yaml:"description"`
	DebitColumn       string                `yaml:"debit"`
	CreditColumn      string                `yaml:"credit"`
	BankAccount       bool                  `yaml:"bank_account"`
}

// SingleColumn reports whether debit and credit share one column, leaving
// the sign to distinguish direction.
func (f AccountFormat) SingleColumn() bool {
	return f.DebitColumn == f.CreditColumn
}

// Catalog is an ordered list of account formats. Filename matching walks
// the list in order and the first matching source key wins, so entry order
// is part of the contract.
type Catalog struct {
	formats []AccountFormat
}

// NewCatalog creates a catalog from formats, preserving their order.
func NewCatalog(formats []AccountFormat) *Catalog {
	return &Catalog{formats: formats}
}

// Append adds formats after the existing entries.
func (c *Catalog) Append(formats ...AccountFormat) {
	c.formats = append(c.formats, formats...)
}

// Lookup resolves the account format for a statement file. The base file
// name is lower-cased and must contain a source key as a substring.
func (c *Catalog) Lookup(path string) (AccountFormat, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, f := range c.formats {
		if strings.Contains(base, f.SourceKey) {
			return f, nil
		}
	}
	return AccountFormat{}, &UnknownSourceError{Path: path}
}

// UnknownSourceError means a statement file matched no known source key.
// A misclassified file would silently corrupt the ledger, so this aborts
// the whole run.
type UnknownSourceError struct {
	Path string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source for %s", e.Path)
}
