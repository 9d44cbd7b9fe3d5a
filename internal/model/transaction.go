package model

import "github.com/shopspring/decimal"

// TransactionType classifies a ledger row as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// Transaction is one normalized ledger row.
//
// Amount is stored debit-positive / credit-negative before any type-based
// interpretation by the exporter.
type Transaction struct {
	Date        string // ISO YYYY-MM-DD; empty when the source had no date
	Description string
	Amount      decimal.Decimal
	Category    string
	Notes       string
	Source      string // source key with the first letter capitalized
	Type        TransactionType
}
