package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	SessionID string `cookie:"sessionId" doc:"Session cookie issued by the create endpoint"`
}

// Balance is the income/outcome split of a session.
type Balance struct {
	Income  float64 `json:"income" doc:"Sum of positive amounts"`
	Outcome float64 `json:"outcome" doc:"Sum of the remaining amounts, zero or negative"`
	Total   float64 `json:"total" doc:"income + outcome"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Every transaction of the session"`
	Balance      Balance       `json:"balance" doc:"Balance over the returned transactions"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, sessionID string) ([]service.Transaction, service.Balance, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
	Sessions           *session.Resolver
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister, resolver *session.Resolver) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc, Sessions: resolver}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns every transaction of the session together with its balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	sessionID, err := h.Sessions.Require(input.SessionID)
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to list transactions")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, balance, err := h.TransactionService.ListTransactions(ctx, sessionID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
		Balance: Balance{
			Income:  balance.Income.InexactFloat64(),
			Outcome: balance.Outcome.InexactFloat64(),
			Total:   balance.Total.InexactFloat64(),
		},
	}
	for i, tx := range transactions {
		resp.Transactions[i] = toTransaction(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
