package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/service"
)

func TestHTTP_Summary_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetSummary", mock.Anything, testSession).
		Return(service.Summary{Amount: decimal.NewFromInt(3000)}, nil)

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions/summary", sessionCookie(testSession))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body SummaryResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3000.0, body.Summary.Amount)
	mockSvc.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_Summary_Empty(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetSummary", mock.Anything, testSession).Return(service.Summary{Amount: decimal.Zero}, nil)

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions/summary", sessionCookie(testSession))
	require.Equal(t, http.StatusOK, resp.Code)

	assert.JSONEq(t, `{"summary":{"amount":0}}`, stripSchema(t, resp.Body.Bytes()))
}

func TestHTTP_Summary_MissingSession(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions/summary")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "GetSummary", mock.Anything, mock.Anything)
}

func TestHTTP_Summary_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetSummary", mock.Anything, mock.Anything).
		Return(service.Summary{}, &service.StorageError{Op: "sum amount", Err: errors.New("database unavailable")})

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions/summary", sessionCookie(testSession))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
