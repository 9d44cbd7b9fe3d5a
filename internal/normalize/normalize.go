// Package normalize turns raw statement rows into canonical ledger
// transactions: noise filtering, date normalization, type classification,
// amount resolution, and categorization, in that order.
package normalize

import (
	"strings"
	"unicode"

	"github.com/ledgerize-dev/ledgerize/internal/format"
	"github.com/ledgerize-dev/ledgerize/internal/model"
	"github.com/ledgerize-dev/ledgerize/internal/rules"
)

// multiItemNote annotates amazon rows whose description concatenates
// several order items.
const multiItemNote = "Multiple items"

// multiItemSeparator is how the amazon export joins item names.
const multiItemSeparator = ";"

// Row converts one header-mapped CSV row into a canonical transaction.
// ok is false for noise rows, which contribute nothing to the output.
// Classification runs before amount resolution: single-column sign
// handling depends on the resolved type.
func Row(row map[string]string, f format.AccountFormat, cat *rules.Categorizer) (txn model.Transaction, ok bool, err error) {
	raw, present := row[f.DescriptionColumn]
	if !present {
		return model.Transaction{}, false, nil
	}
	desc := strings.TrimSpace(raw)
	if rules.IsNoise(desc) {
		return model.Transaction{}, false, nil
	}

	date, err := NormalizeDate(row[f.DateColumn])
	if err != nil {
		return model.Transaction{}, false, err
	}

	txType := rules.Classify(f.DefaultType, desc)
	amount := ResolveAmount(row[f.DebitColumn], row[f.CreditColumn], f, txType)
	category := cat.Categorize(desc, f.SourceKey)

	notes := ""
	if f.SourceKey == format.SourceAmazon && strings.Contains(desc, multiItemSeparator) {
		notes = multiItemNote
	}

	return model.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Category:    category,
		Notes:       notes,
		Source:      capitalize(f.SourceKey),
		Type:        txType,
	}, true, nil
}

// capitalize upper-cases the first rune only, so "capital_one" becomes
// "Capital_one".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
