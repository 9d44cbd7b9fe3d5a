package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerize-dev/ledgerize/internal/format"
	"github.com/ledgerize-dev/ledgerize/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,234.56", "1234.56"},
		{"-$1,234.56", "-1234.56"},
		{"($500)", "-500"},
		{"($1,000.25)", "-1000.25"},
		{"500", "500"},
		{" -25.00 ", "-25"},
		{"", "0"},
		{"   ", "0"},
		{"n/a", "0"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.in)
		assert.True(t, dec(tt.want).Equal(got), "ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestResolveAmountSingleColumnCard(t *testing.T) {
	f := format.AccountFormat{DebitColumn: "Amount", CreditColumn: "Amount"}

	// Card exports report charges positive; canonical stores expenses
	// negated at this stage.
	got := ResolveAmount("-49.99", "-49.99", f, model.TypeExpense)
	assert.True(t, dec("49.99").Equal(got), "got %s", got)

	got = ResolveAmount("15.00", "15.00", f, model.TypeExpense)
	assert.True(t, dec("-15").Equal(got), "got %s", got)
}

func TestResolveAmountSingleColumnBank(t *testing.T) {
	f := format.AccountFormat{DebitColumn: "Amount", CreditColumn: "Amount", BankAccount: true}

	// Bank exports may already show expenses negative; normalize to the
	// absolute value.
	got := ResolveAmount("-52.00", "-52.00", f, model.TypeExpense)
	assert.True(t, dec("52").Equal(got), "got %s", got)

	got = ResolveAmount("52.00", "52.00", f, model.TypeExpense)
	assert.True(t, dec("52").Equal(got), "got %s", got)
}

func TestResolveAmountSingleColumnIncomePassthrough(t *testing.T) {
	f := format.AccountFormat{DebitColumn: "Amount", CreditColumn: "Amount", BankAccount: true}

	got := ResolveAmount("1500.00", "1500.00", f, model.TypeIncome)
	assert.True(t, dec("1500").Equal(got), "got %s", got)
}

func TestResolveAmountDistinctColumns(t *testing.T) {
	f := format.AccountFormat{DebitColumn: "Debit", CreditColumn: "Credit"}

	got := ResolveAmount("100.00", "", f, model.TypeExpense)
	assert.True(t, dec("100").Equal(got), "got %s", got)

	// Credits reduce the signed amount.
	got = ResolveAmount("", "5.00", f, model.TypeExpense)
	assert.True(t, dec("-5").Equal(got), "got %s", got)

	got = ResolveAmount("", "", f, model.TypeExpense)
	assert.True(t, got.IsZero())
}
