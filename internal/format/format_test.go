package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerize-dev/ledgerize/internal/model"
)

func TestLookupMatchesBaseName(t *testing.T) {
	c := DefaultCatalog()

	f, err := c.Lookup("/exports/Capital_One_July2025.csv")
	require.NoError(t, err)
	assert.Equal(t, "capital_one", f.SourceKey)
	assert.Equal(t, model.TypeExpense, f.DefaultType)

	f, err = c.Lookup("statements/citibank-2025-07.csv")
	require.NoError(t, err)
	assert.Equal(t, "citibank", f.SourceKey)
}

func TestLookupFirstMatchWins(t *testing.T) {
	c := NewCatalog([]AccountFormat{
		{SourceKey: "chase_ihg"},
		{SourceKey: "chase"},
	})

	f, err := c.Lookup("chase_ihg_export.csv")
	require.NoError(t, err)
	assert.Equal(t, "chase_ihg", f.SourceKey)

	// A generic chase file falls through to the broader key.
	f, err = c.Lookup("chase_checking.csv")
	require.NoError(t, err)
	assert.Equal(t, "chase", f.SourceKey)
}

func TestLookupUnknownSource(t *testing.T) {
	c := DefaultCatalog()

	_, err := c.Lookup("mystery_bank.csv")
	require.Error(t, err)

	var unknownErr *UnknownSourceError
	require.True(t, errors.As(err, &unknownErr))
	assert.Contains(t, unknownErr.Error(), "mystery_bank.csv")
}

func TestAppendPreservesBuiltinPriority(t *testing.T) {
	c := DefaultCatalog()
	c.Append(AccountFormat{SourceKey: "ent_business"})

	// "ent" is a built-in and still wins for names containing both keys.
	f, err := c.Lookup("ent_business_2025.csv")
	require.NoError(t, err)
	assert.Equal(t, "ent", f.SourceKey)
}

func TestSingleColumn(t *testing.T) {
	shared := AccountFormat{DebitColumn: "Amount", CreditColumn: "Amount"}
	distinct := AccountFormat{DebitColumn: "Debit", CreditColumn: "Credit"}

	assert.True(t, shared.SingleColumn())
	assert.False(t, distinct.SingleColumn())
}

func TestDefaultCatalogFlags(t *testing.T) {
	c := DefaultCatalog()

	f, err := c.Lookup("elevations_checking.csv")
	require.NoError(t, err)
	assert.True(t, f.BankAccount)
	assert.Equal(t, model.TypeIncome, f.DefaultType)
	assert.True(t, f.SingleColumn())

	f, err = c.Lookup("amazon_orders.csv")
	require.NoError(t, err)
	assert.False(t, f.BankAccount)
	assert.Equal(t, "items", f.DescriptionColumn)
	assert.False(t, f.SingleColumn())
}
