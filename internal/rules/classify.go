package rules

import "github.com/ledgerize-dev/ledgerize/internal/model"

// incomeOverrides flip default-Expense rows: statement credits and reward
// redemptions are economically income even on a card account.
var incomeOverrides = compilePatterns(
	`statement\s+credit`,
	`reward\s+points`,
	`expensify`,
)

// expenseOverrides flip default-Income rows: bill-pay lines, paid checks
// and utility drafts are money out even on a bank account.
var expenseOverrides = compilePatterns(
	`billpay`,
	`check\s*#?\s*\d+`,
	`xcel\s+energy`,
	`black\s+hills\s+energy`,
)

// Classify applies description overrides to the format's default type.
// Overrides win in both directions; otherwise the default stands.
func Classify(defaultType model.TransactionType, description string) model.TransactionType {
	switch defaultType {
	case model.TypeExpense:
		if matchAny(incomeOverrides, description) {
			return model.TypeIncome
		}
	case model.TypeIncome:
		if matchAny(expenseOverrides, description) {
			return model.TypeExpense
		}
	}
	return defaultType
}
