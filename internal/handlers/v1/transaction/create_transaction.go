package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

const messageCreated = "created"

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Title  string  `json:"title" minLength:"1" doc:"Title of the transaction"`
	Amount float64 `json:"amount" minimum:"0" exclusiveMaximum:"1000000000000" doc:"Non-negative amount with at most two decimal places; outcomes are stored negated"`
	Type   string  `json:"type" enum:"income,outcome" doc:"Direction of the transaction"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	SessionID string `cookie:"sessionId" doc:"Existing session cookie; a new one is issued when absent"`
	Body      CreateTransactionBody
}

type CreateTransactionResponseBody struct {
	Message string `json:"message" example:"created"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      CreateTransactionResponseBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, sessionID string, req service.CreateTransactionRequest) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	Sessions           *session.Resolver
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator, resolver *session.Resolver) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, Sessions: resolver}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create transaction",
		Description:   "Creates a transaction in the caller's session, issuing the session cookie when the request has none.",
		Tags:          []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	resolution, err := h.Sessions.Resolve(input.SessionID)
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to issue session")
	}
	if logData != nil {
		logData.AddData("sessionIssued", resolution.Issued)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, resolution.ID, service.CreateTransactionRequest{
		Title:  input.Body.Title,
		Amount: input.Body.Amount,
		Type:   input.Body.Type,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	out := &CreateTransactionOutput{Body: CreateTransactionResponseBody{Message: messageCreated}}
	if resolution.Issued {
		out.SetCookie = []http.Cookie{session.Cookie(resolution.ID)}
	}
	return out, nil
}
