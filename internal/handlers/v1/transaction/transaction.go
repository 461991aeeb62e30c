package transaction

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string  `json:"id" doc:"Transaction UUID"`
	Title     string  `json:"title" doc:"Title of the transaction"`
	Amount    float64 `json:"amount" doc:"Signed amount, negative for outcomes"`
	CreatedAt string  `json:"created_at" doc:"RFC3339 creation time"`
	SessionID string  `json:"session_id" doc:"Session the transaction belongs to"`
}

func toTransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		Title:     tx.Title,
		Amount:    tx.Amount.InexactFloat64(),
		CreatedAt: tx.CreatedAt.UTC().Format(time.RFC3339),
		SessionID: tx.SessionID,
	}
}

// TransactionService is everything the transaction endpoints need from the
// service layer.
type TransactionService interface {
	transactionCreator
	transactionLister
	transactionGetter
	summaryGetter
}

// Register wires every transaction endpoint. The summary route goes before
// the {id} route so the static path always wins.
func Register(api huma.API, svc TransactionService, resolver *session.Resolver) {
	NewListTransactionsHandler(svc, resolver).Register(api)
	NewSummaryHandler(svc, resolver).Register(api)
	NewGetTransactionHandler(svc, resolver).Register(api)
	NewCreateTransactionHandler(svc, resolver).Register(api)
}
