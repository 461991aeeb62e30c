package service

import (
	"math"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AmountScale and MaxAmount mirror the numeric(14,2) amount column.
const AmountScale = 2

var MaxAmount = decimal.New(1, 12)

// ValidateCreateTransaction checks a create request and returns its validated
// form. The amount must be a finite, non-negative number below MaxAmount with
// at most two decimal places; the sign is applied later from the type.
func ValidateCreateTransaction(req CreateTransactionRequest) (NewTransaction, error) {
	if strings.TrimSpace(req.Title) == "" {
		return NewTransaction{}, newValidationError("title", "must not be empty")
	}

	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return NewTransaction{}, newValidationError("amount", "must be a number")
	}
	if req.Amount < 0 {
		return NewTransaction{}, newValidationError("amount", "must not be negative")
	}

	amount := decimal.NewFromFloat(req.Amount)
	if amount.GreaterThanOrEqual(MaxAmount) {
		return NewTransaction{}, newValidationError("amount", "must be less than "+MaxAmount.String())
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return NewTransaction{}, newValidationError("amount", "must have at most two decimal places")
	}

	txType := TransactionType(req.Type)
	if txType != TransactionTypeIncome && txType != TransactionTypeOutcome {
		return NewTransaction{}, newValidationError("type", "must be one of income, outcome")
	}

	return NewTransaction{
		Title:  req.Title,
		Amount: amount,
		Type:   txType,
	}, nil
}

func parseTransactionID(id string) (uuid.UUID, error) {
	parsed, err := uuid.FromString(id)
	if err != nil {
		return uuid.Nil, newValidationError("id", "must be a UUID")
	}
	return parsed, nil
}
