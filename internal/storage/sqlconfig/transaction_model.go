package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	transactionsTable = "transactions"

	columnID        = "id"
	columnTitle     = "title"
	columnAmount    = "amount"
	columnCreatedAt = "created_at"
	columnSessionID = "session_id"
	columnSeq       = "seq"
)

var transactionColumns = []any{columnID, columnTitle, columnAmount, columnCreatedAt, columnSessionID}

// Transaction represents a transaction record.
type Transaction struct {
	ID        uuid.UUID       `db:"id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
	SessionID string          `db:"session_id"`
}

// TransactionCreate is the input for inserting a transaction.
// Amount is stored as given; sign normalization happens in the service layer.
type TransactionCreate struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	SessionID string
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. postgres or sqlite) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) error
	SelectBySession(ctx context.Context, sessionID string) ([]*Transaction, error)
	// SelectOne returns nil, nil when no row matches both id and sessionID.
	SelectOne(ctx context.Context, id uuid.UUID, sessionID string) (*Transaction, error)
	// SumAmount returns an invalid NullDecimal when the session has no rows.
	SumAmount(ctx context.Context, sessionID string) (decimal.NullDecimal, error)
}
