package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
	mu        sync.Mutex
	published []TransactionCreated
}

func (m *mockPublisher) Publish(ctx context.Context, evt TransactionCreated) error {
	args := m.Called(ctx, evt)
	if args.Error(0) == nil {
		m.mu.Lock()
		m.published = append(m.published, evt)
		m.mu.Unlock()
	}
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newEvent(amount string) TransactionCreated {
	return TransactionCreated{
		ID:         uuid.Must(uuid.NewV4()),
		SessionID:  "session-a",
		Amount:     decimal.RequireFromString(amount),
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_PublishesAndDrainsOnStop(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	d := NewDispatcher(pub, quietLogger(), 2, 10)
	d.Start()

	for i := 0; i < 5; i++ {
		assert.True(t, d.Dispatch(newEvent("1")))
	}
	d.Stop()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Len(t, pub.published, 5)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	pub := new(mockPublisher)

	// Workers are not started so nothing drains the queue.
	d := NewDispatcher(pub, quietLogger(), 1, 1)

	assert.True(t, d.Dispatch(newEvent("1")))
	assert.False(t, d.Dispatch(newEvent("2")))
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDispatcher_DispatchAfterStop(t *testing.T) {
	pub := new(mockPublisher)
	d := NewDispatcher(pub, quietLogger(), 1, 1)
	d.Start()
	d.Stop()
	d.Stop()

	assert.False(t, d.Dispatch(newEvent("1")))
}

func TestDispatcher_PublishErrorIsLogged(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	logger := logrus.New()
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)

	d := NewDispatcher(pub, logger, 1, 1)
	d.Start()
	require.True(t, d.Dispatch(newEvent("1")))
	d.Stop()

	assert.Contains(t, buf.String(), "broker down")
	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestTransactionCreated_JSON(t *testing.T) {
	evt := newEvent("-20.5")

	body, err := evt.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"session_id":"session-a"`)

	var decoded TransactionCreated
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, evt.ID, decoded.ID)
	assert.True(t, evt.Amount.Equal(decoded.Amount))
	assert.True(t, evt.OccurredAt.Equal(decoded.OccurredAt))
}

func TestLogPublisher(t *testing.T) {
	logger := logrus.New()
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)

	p := NewLogPublisher(logger)
	assert.NoError(t, p.Publish(context.Background(), newEvent("12")))
	assert.NoError(t, p.Close())
	assert.Contains(t, buf.String(), TransactionCreatedType)
}

func TestNewDispatcher_Defaults(t *testing.T) {
	d := NewDispatcher(new(mockPublisher), quietLogger(), 0, 0)

	assert.Equal(t, 1, d.numWorkers)
	assert.Equal(t, DefaultQueueSize, cap(d.queue))
}
