package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/events"
	"github.com/carson-networks/ledger-server/internal/session"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type eventDispatcher interface {
	Dispatch(evt events.TransactionCreated) bool
}

// TransactionService handles transaction business logic. Every operation is
// scoped to a single session.
type TransactionService struct {
	storage *storage.Storage
	events  eventDispatcher
	newID   func() (uuid.UUID, error)
	now     func() time.Time
}

// NewTransactionService creates a new TransactionService. dispatcher may be nil.
func NewTransactionService(store *storage.Storage, dispatcher eventDispatcher) *TransactionService {
	return &TransactionService{
		storage: store,
		events:  dispatcher,
		newID:   uuid.NewV4,
		now:     time.Now,
	}
}

// CreateTransaction validates req, stores it under sessionID with the sign
// implied by its type, and returns the generated ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, sessionID string, req CreateTransactionRequest) (uuid.UUID, error) {
	if sessionID == "" {
		return uuid.Nil, session.ErrMissing
	}

	newTx, err := ValidateCreateTransaction(req)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.newID()
	if err != nil {
		return uuid.Nil, err
	}

	storageCreate := &sqlconfig.TransactionCreate{
		ID:        id,
		Title:     newTx.Title,
		Amount:    newTx.SignedAmount(),
		SessionID: sessionID,
	}
	if err := s.storage.Transactions.Insert(ctx, storageCreate); err != nil {
		return uuid.Nil, wrapStorage("insert", err)
	}

	if s.events != nil {
		s.events.Dispatch(events.TransactionCreated{
			ID:         id,
			SessionID:  sessionID,
			Amount:     storageCreate.Amount,
			OccurredAt: s.now().UTC(),
		})
	}

	return id, nil
}

// ListTransactions returns the session's transactions with their balance.
func (s *TransactionService) ListTransactions(ctx context.Context, sessionID string) ([]Transaction, Balance, error) {
	if sessionID == "" {
		return nil, Balance{}, session.ErrMissing
	}

	rows, err := s.storage.Transactions.SelectBySession(ctx, sessionID)
	if err != nil {
		return nil, Balance{}, wrapStorage("select by session", err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}

	return transactions, ComputeBalance(transactions), nil
}

// GetTransaction returns one transaction of the session. A malformed id is a
// ValidationError and never reaches storage.
func (s *TransactionService) GetTransaction(ctx context.Context, sessionID, id string) (*Transaction, error) {
	if sessionID == "" {
		return nil, session.ErrMissing
	}

	txID, err := parseTransactionID(id)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.SelectOne(ctx, txID, sessionID)
	if err != nil {
		return nil, wrapStorage("select one", err)
	}
	if row == nil {
		return nil, ErrTransactionNotFound
	}

	tx := transactionFromStorage(row)
	return &tx, nil
}

// GetSummary returns the sum of the session's amounts, zero when it has none.
func (s *TransactionService) GetSummary(ctx context.Context, sessionID string) (Summary, error) {
	if sessionID == "" {
		return Summary{}, session.ErrMissing
	}

	sum, err := s.storage.Transactions.SumAmount(ctx, sessionID)
	if err != nil {
		return Summary{}, wrapStorage("sum amount", err)
	}

	if !sum.Valid {
		return Summary{Amount: decimal.Zero}, nil
	}
	return Summary{Amount: sum.Decimal}, nil
}

// IsStorageError reports whether err came from the persistence layer.
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:        row.ID,
		Title:     row.Title,
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
		SessionID: row.SessionID,
	}
}
