package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const TransactionCreatedType = "transaction.created"

// TransactionCreated is emitted after a transaction row has been inserted.
type TransactionCreated struct {
	ID         uuid.UUID       `json:"id"`
	SessionID  string          `json:"session_id"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e TransactionCreated) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events to their destination.
type Publisher interface {
	Publish(ctx context.Context, evt TransactionCreated) error
	Close() error
}
