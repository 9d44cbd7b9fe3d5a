package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerize-dev/ledgerize/internal/format"
	"github.com/ledgerize-dev/ledgerize/internal/model"
)

// parenNegative matches a leading "(" (optionally followed by a currency
// symbol) before a digit, the accounting notation for a negative value.
var parenNegative = regexp.MustCompile(`^\(\$?\d`)

var amountCleaner = strings.NewReplacer("$", "", ",", "", "(", "", ")", "")

// ParseAmount converts raw statement text to a decimal amount. Absent or
// unparseable input yields zero, never an error; partial data beats an
// aborted run.
func ParseAmount(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero
	}
	negative := parenNegative.MatchString(s)
	d, err := decimal.NewFromString(amountCleaner.Replace(s))
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return d.Neg()
	}
	return d
}

// ResolveAmount computes the signed amount for a row, debit-positive and
// credit-negative. Single-column formats rely on the already-classified
// transaction type: card exports report expenses positive (flip them),
// bank exports may report them negative (normalize to positive). The two
// single-column rules are intentionally mirrored and must stay that way.
func ResolveAmount(rawDebit, rawCredit string, f format.AccountFormat, txType model.TransactionType) decimal.Decimal {
	switch {
	case f.SingleColumn() && !f.BankAccount && txType == model.TypeExpense:
		return ParseAmount(rawDebit).Neg()
	case f.SingleColumn() && f.BankAccount && txType == model.TypeExpense:
		return ParseAmount(rawDebit).Abs()
	case strings.TrimSpace(rawDebit) != "":
		return ParseAmount(rawDebit)
	case strings.TrimSpace(rawCredit) != "":
		return ParseAmount(rawCredit).Neg()
	default:
		return decimal.Zero
	}
}
