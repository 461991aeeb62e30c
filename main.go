package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/events"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("ledger-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logger = logging.SetupLoggingWithLevel(envConfig.LogLevel)

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dbStorage.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	publisher, err := newPublisher(envConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("events.NewPublisher")
		return
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.WithError(err).Error("events.Publisher.Close")
		}
	}()

	dispatcher := events.NewDispatcher(publisher, logger, envConfig.EventWorkers, events.DefaultQueueSize)
	dispatcher.Start()
	defer dispatcher.Stop()

	svc := service.NewService(dbStorage, dispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Storage:  dbStorage,
			Sessions: session.NewResolver(uuid.NewV4),
		}
		return httpRest.Serve(groupCtx)
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("ledger-server stopped with error")
		return
	}
	logger.Info("ledger-server stopped")
}

// newPublisher publishes to RabbitMQ when AMQP_URL is set and to the log otherwise.
func newPublisher(env *config.Config, logger *logrus.Logger) (events.Publisher, error) {
	if env.AMQPURL == "" {
		return events.NewLogPublisher(logger), nil
	}
	return events.NewAMQPPublisher(env.AMQPURL, env.AMQPExchange, env.AMQPRoutingKey)
}
