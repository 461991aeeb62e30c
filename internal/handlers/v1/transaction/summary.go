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

type SummaryInput struct {
	SessionID string `cookie:"sessionId" doc:"Session cookie issued by the create endpoint"`
}

type Summary struct {
	Amount float64 `json:"amount" doc:"Sum of every signed amount of the session, 0 when it has none"`
}

type SummaryResponseBody struct {
	Summary Summary `json:"summary"`
}

type SummaryOutput struct {
	Body SummaryResponseBody
}

type summaryGetter interface {
	GetSummary(ctx context.Context, sessionID string) (service.Summary, error)
}

// SummaryHandler handles GET /transactions/summary.
type SummaryHandler struct {
	TransactionService summaryGetter
	Sessions           *session.Resolver
}

func NewSummaryHandler(svc summaryGetter, resolver *session.Resolver) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc, Sessions: resolver}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction-summary",
		Method:      http.MethodGet,
		Path:        "/transactions/summary",
		Summary:     "Transaction summary",
		Description: "Returns the sum of all amounts of the session.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	sessionID, err := h.Sessions.Require(input.SessionID)
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to get summary")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddTiming("summaryMs")()
	}

	summary, err := h.TransactionService.GetSummary(ctx, sessionID)
	if err != nil {
		return nil, handlers.ToHTTPError(ctx, err, "failed to get summary")
	}

	return &SummaryOutput{Body: SummaryResponseBody{Summary: Summary{Amount: summary.Amount.InexactFloat64()}}}, nil
}
