package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/service"
)

func makeServiceTransaction(title, amount string) service.Transaction {
	return service.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     title,
		Amount:    decimal.RequireFromString(amount),
		CreatedAt: time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
		SessionID: testSession,
	}
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	txs := []service.Transaction{
		makeServiceTransaction("Salary", "5000"),
		makeServiceTransaction("Rent", "-2000"),
	}
	balance := service.Balance{
		Income:  decimal.NewFromInt(5000),
		Outcome: decimal.NewFromInt(-2000),
		Total:   decimal.NewFromInt(3000),
	}

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, testSession).Return(txs, balance, nil)

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions", sessionCookie(testSession))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Transactions, 2, spew.Sdump(body))
	assert.Equal(t, txs[0].ID.String(), body.Transactions[0].ID)
	assert.Equal(t, "Salary", body.Transactions[0].Title)
	assert.Equal(t, 5000.0, body.Transactions[0].Amount)
	assert.Equal(t, "2025-06-15T08:00:00Z", body.Transactions[0].CreatedAt)
	assert.Equal(t, testSession, body.Transactions[0].SessionID)
	assert.Equal(t, -2000.0, body.Transactions[1].Amount)
	assert.Equal(t, Balance{Income: 5000, Outcome: -2000, Total: 3000}, body.Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, testSession).
		Return([]service.Transaction{}, service.Balance{}, nil)

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions", sessionCookie(testSession))
	require.Equal(t, http.StatusOK, resp.Code)

	assert.JSONEq(t, `{"transactions":[],"balance":{"income":0,"outcome":0,"total":0}}`, stripSchema(t, resp.Body.Bytes()))
}

func TestHTTP_ListTransactions_MissingSession(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, service.Balance{}, &service.StorageError{Op: "select by session", Err: errors.New("database unavailable")})

	resp := newTestAPI(t, mockSvc, nil).Get("/transactions", sessionCookie(testSession))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

// stripSchema drops the $schema link huma adds to response bodies.
func stripSchema(t *testing.T, raw []byte) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	delete(body, "$schema")
	out, err := json.Marshal(body)
	require.NoError(t, err)
	return string(out)
}
