// Package handlers holds what every versioned handler package shares: the
// error format and the translation of service errors into HTTP errors.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

const (
	MessageSessionMissing = "session cookie missing"
	MessageNotFound       = "Transaction not found"
)

var configureOnce sync.Once

// ConfigureErrors makes huma report request-schema violations as 400 instead
// of 422. It must run before the first request is served and is safe to call
// more than once.
func ConfigureErrors() {
	configureOnce.Do(func() {
		base := huma.NewError
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}
			return base(status, msg, errs...)
		}
	})
}

// ToHTTPError maps a service or session error onto its HTTP status. Storage
// failures and anything unrecognised are a 500 with the detail kept in the
// request log only.
func ToHTTPError(ctx context.Context, err error, failureMessage string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.Error400BadRequest(validationErr.Error())
	case errors.Is(err, session.ErrMissing):
		return huma.Error401Unauthorized(MessageSessionMissing)
	case errors.Is(err, service.ErrTransactionNotFound):
		return huma.Error404NotFound(MessageNotFound)
	case service.IsStorageError(err):
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("storageFailure", true)
			logData.SetError(err)
		}
		return huma.Error500InternalServerError(failureMessage)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.SetError(err)
	}
	return huma.Error500InternalServerError(failureMessage)
}
