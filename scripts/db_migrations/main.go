package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	status, err := storage.RunMigrations(env.DatabaseClient, env.DSN())
	if err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logger.WithFields(logrus.Fields{
		"databaseClient":       env.DatabaseClient,
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}
