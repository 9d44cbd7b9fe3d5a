package format

import "github.com/ledgerize-dev/ledgerize/internal/model"

// SourceAmazon gets a dedicated category table and the multi-item note.
const SourceAmazon = "amazon"

// DefaultCatalog returns the built-in account formats.
func DefaultCatalog() *Catalog {
	return NewCatalog([]AccountFormat{
		{SourceKey: SourceAmazon, DefaultType: model.TypeExpense, DateColumn: "date", DescriptionColumn: "items", DebitColumn: "total", CreditColumn: "refund"},
		{SourceKey: "capital_one", DefaultType: model.TypeExpense, DateColumn: "Transaction Date", DescriptionColumn: "Description", DebitColumn: "Debit", CreditColumn: "Credit"},
		{SourceKey: "chase_ihg", DefaultType: model.TypeExpense, DateColumn: "Transaction Date", DescriptionColumn: "Description", DebitColumn: "Amount", CreditColumn: "Amount"},
		{SourceKey: "citibank", DefaultType: model.TypeExpense, DateColumn: "Date", DescriptionColumn: "Description", DebitColumn: "Debit", CreditColumn: "Credit"},
		{SourceKey: "elevations", DefaultType: model.TypeIncome, DateColumn: "Posting Date", DescriptionColumn: "Description", DebitColumn: "Amount", CreditColumn: "Amount", BankAccount: true},
		{SourceKey: "ent", DefaultType: model.TypeIncome, DateColumn: "Date", DescriptionColumn: "Description", DebitColumn: "Amount", CreditColumn: "Amount", BankAccount: true},
		{SourceKey: "fidelity", DefaultType: model.TypeIncome, DateColumn: "Run Date", DescriptionColumn: "Action", DebitColumn: "Amount ($)", CreditColumn: "Amount ($)", BankAccount: true},
		{SourceKey: "vanguard", DefaultType: model.TypeIncome, DateColumn: "Settlement Date", DescriptionColumn: "Transaction Description", DebitColumn: "Net Amount", CreditColumn: "Net Amount", BankAccount: true},
	})
}
