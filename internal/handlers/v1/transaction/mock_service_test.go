package transaction

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

// mockTransactionService is a mock for TransactionService.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, sessionID string, req service.CreateTransactionRequest) (uuid.UUID, error) {
	args := m.Called(ctx, sessionID, req)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, sessionID string) ([]service.Transaction, service.Balance, error) {
	args := m.Called(ctx, sessionID)
	txs, _ := args.Get(0).([]service.Transaction)
	balance, _ := args.Get(1).(service.Balance)
	return txs, balance, args.Error(2)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, sessionID, id string) (*service.Transaction, error) {
	args := m.Called(ctx, sessionID, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) GetSummary(ctx context.Context, sessionID string) (service.Summary, error) {
	args := m.Called(ctx, sessionID)
	summary, _ := args.Get(0).(service.Summary)
	return summary, args.Error(1)
}

const testSession = "6f1c2a4e-3b1d-4f7a-9c2e-1a2b3c4d5e6f"

func sessionCookie(id string) string {
	return "Cookie: " + session.CookieName + "=" + id
}

// newTestAPI registers every transaction endpoint against a humatest API.
func newTestAPI(t *testing.T, svc TransactionService, resolver *session.Resolver) humatest.TestAPI {
	t.Helper()
	handlers.ConfigureErrors()
	if resolver == nil {
		resolver = session.NewResolver(nil)
	}
	_, api := humatest.New(t)
	Register(api, svc, resolver)
	return api
}
