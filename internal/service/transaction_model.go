package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the declared direction of a new transaction. It is not
// persisted; only the signed amount is.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeOutcome TransactionType = "outcome"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	CreatedAt time.Time
	SessionID string
}

// CreateTransactionRequest is the unvalidated input of a create.
type CreateTransactionRequest struct {
	Title  string
	Amount float64
	Type   string
}

// NewTransaction is a validated create request.
type NewTransaction struct {
	Title  string
	Amount decimal.Decimal
	Type   TransactionType
}

// SignedAmount returns the amount as stored: negated for outcomes.
func (n NewTransaction) SignedAmount() decimal.Decimal {
	if n.Type == TransactionTypeOutcome {
		return n.Amount.Neg()
	}
	return n.Amount
}

// Balance splits a session's amounts into income and outcome.
type Balance struct {
	Income  decimal.Decimal
	Outcome decimal.Decimal
	Total   decimal.Decimal
}

// Summary is the plain sum of a session's signed amounts.
type Summary struct {
	Amount decimal.Decimal
}
