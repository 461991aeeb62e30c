package service

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateTransaction_Valid(t *testing.T) {
	newTx, err := ValidateCreateTransaction(CreateTransactionRequest{
		Title:  "New Transaction",
		Amount: 5020,
		Type:   "income",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Transaction", newTx.Title)
	assert.Equal(t, TransactionTypeIncome, newTx.Type)
	assert.True(t, newTx.Amount.Equal(decimal.NewFromInt(5020)))
	assert.True(t, newTx.SignedAmount().Equal(decimal.NewFromInt(5020)))
}

func TestValidateCreateTransaction_OutcomeSignedAmount(t *testing.T) {
	newTx, err := ValidateCreateTransaction(CreateTransactionRequest{
		Title:  "Groceries",
		Amount: 42.5,
		Type:   "outcome",
	})

	require.NoError(t, err)
	assert.True(t, newTx.Amount.Equal(decimal.RequireFromString("42.5")))
	assert.True(t, newTx.SignedAmount().Equal(decimal.RequireFromString("-42.5")))
}

func TestValidateCreateTransaction_ZeroAmountAllowed(t *testing.T) {
	newTx, err := ValidateCreateTransaction(CreateTransactionRequest{Title: "Nothing", Amount: 0, Type: "outcome"})

	require.NoError(t, err)
	assert.True(t, newTx.SignedAmount().IsZero())
}

func TestValidateCreateTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateTransactionRequest
		field string
	}{
		{name: "empty title", req: CreateTransactionRequest{Title: "", Amount: 1, Type: "income"}, field: "title"},
		{name: "blank title", req: CreateTransactionRequest{Title: " \t", Amount: 1, Type: "income"}, field: "title"},
		{name: "NaN amount", req: CreateTransactionRequest{Title: "x", Amount: math.NaN(), Type: "income"}, field: "amount"},
		{name: "infinite amount", req: CreateTransactionRequest{Title: "x", Amount: math.Inf(1), Type: "income"}, field: "amount"},
		{name: "negative amount", req: CreateTransactionRequest{Title: "x", Amount: -1, Type: "outcome"}, field: "amount"},
		{name: "three decimal places", req: CreateTransactionRequest{Title: "x", Amount: 12.345, Type: "income"}, field: "amount"},
		{name: "at the column limit", req: CreateTransactionRequest{Title: "x", Amount: 1e12, Type: "income"}, field: "amount"},
		{name: "beyond the column limit", req: CreateTransactionRequest{Title: "x", Amount: 1e13, Type: "outcome"}, field: "amount"},
		{name: "unknown type", req: CreateTransactionRequest{Title: "x", Amount: 1, Type: "INCOME"}, field: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCreateTransaction(tt.req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateCreateTransaction_AmountLimits(t *testing.T) {
	for _, amount := range []float64{0.01, 12.34, 0.1, 999999999999.99} {
		newTx, err := ValidateCreateTransaction(CreateTransactionRequest{Title: "x", Amount: amount, Type: "income"})

		require.NoError(t, err, "amount %v", amount)
		assert.True(t, newTx.Amount.Equal(decimal.NewFromFloat(amount)), "amount %v stored as %s", amount, newTx.Amount)
	}
}
