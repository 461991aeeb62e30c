package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogPublisher writes events to the application log. It is used when no
// broker is configured.
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, evt TransactionCreated) error {
	p.logger.WithFields(logrus.Fields{
		"event":         TransactionCreatedType,
		"transactionID": evt.ID.String(),
		"sessionID":     evt.SessionID,
		"amount":        evt.Amount.String(),
	}).Info("Events.Publish")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
