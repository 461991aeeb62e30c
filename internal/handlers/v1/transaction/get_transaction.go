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

// GetTransactionInput is the Huma input for fetching one transaction. The id
// is checked by the service so a malformed value never reaches storage.
type GetTransactionInput struct {
	SessionID string `cookie:"sessionId" doc:"Session cookie issued by the create endpoint"`
	ID        string `path:"id" doc:"Transaction UUID"`
}

type GetTransactionResponseBody struct {
	Transaction Transaction `json:"transaction"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body GetTransactionResponseBody
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, sessionID, id string) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
	Sessions           *session.Resolver
}

func NewGetTransactionHandler(svc transactionGetter, resolver *session.Resolver) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc, Sessions: resolver}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns one transaction of the session. Transactions of other sessions are reported as not found.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	sessionID, err := h.Sessions.Require(input.SessionID)
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to get transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", input.ID)
		defer logData.AddTiming("getTransactionMs")()
	}

	tx, err := h.TransactionService.GetTransaction(ctx, sessionID, input.ID)
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: GetTransactionResponseBody{Transaction: toTransaction(*tx)}}, nil
}
