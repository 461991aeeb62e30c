package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
)

const statusOK = "ok"

type pinger interface {
	Ping(ctx context.Context) error
}

type StatusOutput struct {
	Body struct {
		Status string `json:"status" example:"ok"`
	}
}

type Handler struct {
	Storage pinger
}

func NewHandler(store pinger) *Handler {
	return &Handler{Storage: store}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Description: "Reports whether the service can reach its database.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	if err := h.Storage.Ping(ctx); err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.SetError(err)
		}
		return nil, huma.Error503ServiceUnavailable("database unavailable")
	}

	out := &StatusOutput{}
	out.Body.Status = statusOK
	return out, nil
}
